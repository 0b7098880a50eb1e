package output

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/EngNelson/erp-solution-sub003/cmd/config"
	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
	itemrepo "github.com/EngNelson/erp-solution-sub003/repository/item"
	locationrepo "github.com/EngNelson/erp-solution-sub003/repository/location"
	movementrepo "github.com/EngNelson/erp-solution-sub003/repository/movement"
	outputrepo "github.com/EngNelson/erp-solution-sub003/repository/output"
	quantityrepo "github.com/EngNelson/erp-solution-sub003/repository/quantity"
	receptionrepo "github.com/EngNelson/erp-solution-sub003/repository/reception"
	redisrepo "github.com/EngNelson/erp-solution-sub003/repository/redis"
	txrepo "github.com/EngNelson/erp-solution-sub003/repository/tx"
	"github.com/EngNelson/erp-solution-sub003/thirdparty/rabbitmq"
	"github.com/EngNelson/erp-solution-sub003/utils/errors"
	"github.com/EngNelson/erp-solution-sub003/utils/logger"
	"github.com/EngNelson/erp-solution-sub003/utils/reference"
)

type OutputApp interface {
	CreateOutput(ctx context.Context, actor model.Actor, req *model.CreateOutputRequest) (*model.OutputResponse, error)
	ConfirmOutput(ctx context.Context, actor model.Actor, outputRef string, req *model.ConfirmOutputRequest) (*model.OutputResponse, error)
	ValidateOutput(ctx context.Context, actor model.Actor, outputRef string, req *model.ValidateOutputRequest) (*model.OutputResponse, error)
	CancelOutput(ctx context.Context, actor model.Actor, outputRef string, req *model.CancelOutputRequest) (*model.OutputResponse, error)
	GetOutput(ctx context.Context, id uint64) (*model.OutputDetail, error)
}

type outputAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	outputRepo    outputrepo.OutputRepository
	itemRepo      itemrepo.ItemRepository
	locationRepo  locationrepo.LocationRepository
	quantityRepo  quantityrepo.QuantityRepository
	movementRepo  movementrepo.MovementRepository
	receptionRepo receptionrepo.ReceptionRepository
	cacheRepo     redisrepo.Repository
	publisher     *rabbitmq.Publisher
}

func NewOutputApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	outputRepo outputrepo.OutputRepository,
	itemRepo itemrepo.ItemRepository,
	locationRepo locationrepo.LocationRepository,
	quantityRepo quantityrepo.QuantityRepository,
	movementRepo movementrepo.MovementRepository,
	receptionRepo receptionrepo.ReceptionRepository,
	cacheRepo redisrepo.Repository,
	publisher *rabbitmq.Publisher,
) OutputApp {
	return &outputAppImpl{
		config:        config,
		txRepo:        txRepo,
		outputRepo:    outputRepo,
		itemRepo:      itemRepo,
		locationRepo:  locationRepo,
		quantityRepo:  quantityRepo,
		movementRepo:  movementRepo,
		receptionRepo: receptionRepo,
		cacheRepo:     cacheRepo,
		publisher:     publisher,
	}
}

func (s *outputAppImpl) CreateOutput(ctx context.Context, actor model.Actor, req *model.CreateOutputRequest) (*model.OutputResponse, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if !req.Type.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Type.RequiresOrderRef() && req.OrderRef == "" {
		return nil, errors.SetCustomError(constant.ErrMissingOrderReference)
	}

	// The storage point may stay open until the first confirmed scan fixes it
	var storagePointID *uint64
	if req.StoragePointRef != "" {
		sp, err := s.locationRepo.GetStoragePointByReference(ctx, req.StoragePointRef)
		if err != nil {
			logger.Error("[CreateOutput] get storage point", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if sp == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		storagePointID = &sp.ID
	}

	now := time.Now()
	out := &model.Output{
		Reference:      reference.GenerateOutput(now),
		Barcode:        reference.GenerateBarcode(),
		Type:           req.Type,
		Status:         constant.OutputStatusPending,
		StoragePointID: storagePointID,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
	}
	if req.OrderRef != "" {
		out.OrderRef = &req.OrderRef
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOutput] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	outputID, err := s.outputRepo.InsertOutputTx(ctx, tx, out)
	if err != nil {
		logger.Error("[CreateOutput] insert output", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lines := make([]model.OutputLine, 0, len(req.Lines))
	for i, line := range req.Lines {
		lines = append(lines, model.OutputLine{
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
			Position:  i + 1,
		})
	}
	if err := s.outputRepo.InsertLinesTx(ctx, tx, outputID, lines); err != nil {
		logger.Error("[CreateOutput] insert lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOutput] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.OutputResponse{
		ID:             outputID,
		Reference:      out.Reference,
		Barcode:        out.Barcode,
		Type:           string(out.Type),
		Status:         constant.OutputStatusName[out.Status],
		StoragePointID: out.StoragePointID,
	}, nil
}

// confirmedItem is one scanned item validated against the output, plus the
// line it was matched to.
type confirmedItem struct {
	item   *model.ProductItem
	lineID uint64
}

// transitionKey groups counter updates so that each variant gets exactly one
// (decrement, increment) pair per source state within a call.
type transitionKey struct {
	variantID uint64
	productID uint64
	from      constant.ItemState
}

func (s *outputAppImpl) ConfirmOutput(ctx context.Context, actor model.Actor, outputRef string, req *model.ConfirmOutputRequest) (*model.OutputResponse, error) {
	if len(req.Barcodes) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[string]bool, len(req.Barcodes))
	for _, barcode := range req.Barcodes {
		if seen[barcode] {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[barcode] = true
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ConfirmOutput] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	out, err := s.outputRepo.GetByReferenceForUpdateTx(ctx, tx, outputRef)
	if err != nil {
		logger.Error("[ConfirmOutput] get output", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if out == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if out.Status != constant.OutputStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidOutputStatus)
	}

	lines, err := s.outputRepo.GetLinesTx(ctx, tx, out.ID)
	if err != nil {
		logger.Error("[ConfirmOutput] get lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Validation pass: every barcode must resolve to a movable item of the
	// output's storage point and fit inside a line's requested quantity.
	// Nothing is mutated until the whole scan set is accepted.
	storagePointID := out.StoragePointID
	storagePointInferred := false
	confirmedByLine := make(map[uint64]int, len(lines))
	confirmed := make([]confirmedItem, 0, len(req.Barcodes))

	for _, barcode := range req.Barcodes {
		item, err := s.itemRepo.GetByBarcodeForUpdateTx(ctx, tx, barcode)
		if err != nil {
			logger.Error("[ConfirmOutput] get item", zap.String("barcode", barcode), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if item == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if !item.State.Movable() || item.LocationID == nil {
			logger.Info("[ConfirmOutput] item not movable",
				zap.String("barcode", barcode), zap.String("state", string(item.State)))
			return nil, errors.SetCustomError(constant.ErrItemNotMovable)
		}

		itemSP, err := s.locationRepo.StoragePointOfLocationTx(ctx, tx, *item.LocationID)
		if err != nil {
			logger.Error("[ConfirmOutput] resolve storage point", zap.String("barcode", barcode), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if storagePointID == nil {
			// First scan fixes the storage point for the whole output
			sp := itemSP
			storagePointID = &sp
			storagePointInferred = true
		} else if itemSP != *storagePointID {
			return nil, errors.SetCustomError(constant.ErrStoragePointMismatch)
		}

		lineID, ok := matchLine(lines, confirmedByLine, item.VariantID)
		if !ok {
			if hasVariant(lines, item.VariantID) {
				return nil, errors.SetCustomError(constant.ErrQuantityExceeded)
			}
			return nil, errors.SetCustomError(constant.ErrVariantNotRequested)
		}
		confirmedByLine[lineID]++
		confirmed = append(confirmed, confirmedItem{item: item, lineID: lineID})
	}

	// A missing staging location is a configuration error: fatal, and the
	// rollback in the deferred handler discards everything above.
	purpose := constant.LocationPurposePreparation
	if out.Type == constant.OutputTypeInternalNeed {
		purpose = constant.LocationPurposeInternalNeed
	}
	staging, err := s.locationRepo.GetDefaultLocationTx(ctx, tx, *storagePointID, purpose)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Error("[ConfirmOutput] default staging location not configured",
				zap.Uint64("storage_point_id", *storagePointID), zap.String("purpose", string(purpose)))
			return nil, errors.SetCustomError(constant.ErrDefaultLocationNotConfigured)
		}
		logger.Error("[ConfirmOutput] get default location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	locationDeltas := make(map[uint64]int)
	transitions := make(map[transitionKey]int)
	movements := make([]model.StockMovement, 0, len(confirmed))

	for _, c := range confirmed {
		item := c.item
		sourceLocation := *item.LocationID

		movements = append(movements, model.StockMovement{
			MovementType:     constant.MovementTypeInternal,
			TriggerType:      constant.MovementTriggerOutputConfirm,
			TriggeredBy:      out.ID,
			SourceLocationID: &sourceLocation,
			TargetLocationID: &staging.ID,
			ProductItemID:    item.ID,
			CreatedBy:        actor.ID,
			CreatedAt:        now,
		})
		locationDeltas[sourceLocation]--
		locationDeltas[staging.ID]++

		if item.State == constant.ItemStateAvailable {
			transitions[transitionKey{item.VariantID, item.ProductID, constant.ItemStateAvailable}]++
		}
		if err := s.itemRepo.UpdateStateLocationTx(ctx, tx, item.ID, constant.ItemStateReserved, &staging.ID); err != nil {
			logger.Error("[ConfirmOutput] update item", zap.Uint64("item_id", item.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.itemRepo.AttachToOutputTx(ctx, tx, item.ID, out.ID); err != nil {
			logger.Error("[ConfirmOutput] attach item", zap.Uint64("item_id", item.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.movementRepo.InsertMovementsTx(ctx, tx, movements); err != nil {
		logger.Error("[ConfirmOutput] insert movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.applyTransitions(ctx, tx, transitions, constant.ItemStateReserved); err != nil {
		logger.Error("[ConfirmOutput] apply quantity transitions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Shortfall handling: trim parent lines to what was confirmed and carry
	// the remainder to a child output.
	shortfalls := make([]model.OutputLine, 0)
	for _, line := range lines {
		got := confirmedByLine[line.ID]
		if got >= line.Quantity {
			continue
		}
		shortfalls = append(shortfalls, model.OutputLine{
			VariantID: line.VariantID,
			Quantity:  line.Quantity - got,
			Position:  line.Position,
		})
		if got == 0 {
			if err := s.outputRepo.DeleteLineTx(ctx, tx, line.ID); err != nil {
				logger.Error("[ConfirmOutput] delete line", zap.Uint64("line_id", line.ID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			continue
		}
		if err := s.outputRepo.UpdateLineQuantityTx(ctx, tx, line.ID, got); err != nil {
			logger.Error("[ConfirmOutput] update line", zap.Uint64("line_id", line.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	childReference := ""
	if len(shortfalls) > 0 {
		child := &model.Output{
			Reference:      reference.GenerateChild(out.Reference),
			Barcode:        reference.GenerateBarcode(),
			Type:           out.Type,
			Status:         constant.OutputStatusPending,
			StoragePointID: storagePointID,
			OrderRef:       out.OrderRef,
			ParentID:       &out.ID,
			CreatedBy:      actor.ID,
			CreatedAt:      now,
		}
		if !req.PartialAllowed {
			reason := constant.CancelReasonPartialRefused
			child.Status = constant.OutputStatusCanceled
			child.CanceledBy = &actor.ID
			child.CanceledAt = &now
			child.CancelReason = &reason
		}
		childID, err := s.outputRepo.InsertOutputTx(ctx, tx, child)
		if err != nil {
			logger.Error("[ConfirmOutput] insert child output", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.outputRepo.InsertLinesTx(ctx, tx, childID, shortfalls); err != nil {
			logger.Error("[ConfirmOutput] insert child lines", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.outputRepo.SetChildTx(ctx, tx, out.ID, childID); err != nil {
			logger.Error("[ConfirmOutput] link child", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		childReference = child.Reference
	}

	// One flush per call, keyed by location id
	if err := s.locationRepo.ApplyTotalItemsDeltasTx(ctx, tx, locationDeltas); err != nil {
		logger.Error("[ConfirmOutput] flush location deltas", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if storagePointInferred {
		if err := s.outputRepo.SetStoragePointTx(ctx, tx, out.ID, *storagePointID); err != nil {
			logger.Error("[ConfirmOutput] set storage point", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.outputRepo.ConfirmTx(ctx, tx, out.ID, actor.ID, now); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrConcurrentModification)
		}
		logger.Error("[ConfirmOutput] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ConfirmOutput] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateDetailCache(ctx, out.ID)

	return &model.OutputResponse{
		ID:             out.ID,
		Reference:      out.Reference,
		Barcode:        out.Barcode,
		Type:           string(out.Type),
		Status:         constant.OutputStatusName[constant.OutputStatusConfirmed],
		StoragePointID: storagePointID,
		ChildReference: childReference,
	}, nil
}

func (s *outputAppImpl) ValidateOutput(ctx context.Context, actor model.Actor, outputRef string, req *model.ValidateOutputRequest) (*model.OutputResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ValidateOutput] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	out, err := s.outputRepo.GetByReferenceForUpdateTx(ctx, tx, outputRef)
	if err != nil {
		logger.Error("[ValidateOutput] get output", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if out == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if out.Status != constant.OutputStatusConfirmed {
		return nil, errors.SetCustomError(constant.ErrInvalidOutputStatus)
	}

	items, err := s.itemRepo.GetByOutputForUpdateTx(ctx, tx, out.ID)
	if err != nil {
		logger.Error("[ValidateOutput] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	locationDeltas := make(map[uint64]int)
	transitions := make(map[transitionKey]int)
	movements := make([]model.StockMovement, 0, len(items))

	for _, item := range items {
		var sourceLocation *uint64
		if item.LocationID != nil {
			loc := *item.LocationID
			sourceLocation = &loc
			locationDeltas[loc]--
		}
		movements = append(movements, model.StockMovement{
			MovementType:     constant.MovementTypeOut,
			TriggerType:      constant.MovementTriggerOutputValidate,
			TriggeredBy:      out.ID,
			SourceLocationID: sourceLocation,
			ProductItemID:    item.ID,
			CreatedBy:        actor.ID,
			CreatedAt:        now,
		})
		transitions[transitionKey{item.VariantID, item.ProductID, constant.ItemStateReserved}]++

		if err := s.itemRepo.UpdateStateLocationTx(ctx, tx, item.ID, constant.ItemStateGotOut, nil); err != nil {
			logger.Error("[ValidateOutput] update item", zap.Uint64("item_id", item.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.movementRepo.InsertMovementsTx(ctx, tx, movements); err != nil {
		logger.Error("[ValidateOutput] insert movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.applyTransitions(ctx, tx, transitions, constant.ItemStateGotOut); err != nil {
		logger.Error("[ValidateOutput] apply quantity transitions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.locationRepo.ApplyTotalItemsDeltasTx(ctx, tx, locationDeltas); err != nil {
		logger.Error("[ValidateOutput] flush location deltas", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.outputRepo.ValidateTx(ctx, tx, out.ID, actor.ID, req.WithdrawnBy, now); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrConcurrentModification)
		}
		logger.Error("[ValidateOutput] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	snapshots, err := s.quantityRepo.GetVariantSnapshotsTx(ctx, tx, variantIDs(items))
	if err != nil {
		logger.Error("[ValidateOutput] read quantity snapshots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ValidateOutput] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateDetailCache(ctx, out.ID)
	s.publishQuantitySync(out.Reference, snapshots)

	return &model.OutputResponse{
		ID:             out.ID,
		Reference:      out.Reference,
		Barcode:        out.Barcode,
		Type:           string(out.Type),
		Status:         constant.OutputStatusName[constant.OutputStatusValidated],
		StoragePointID: out.StoragePointID,
	}, nil
}

func (s *outputAppImpl) CancelOutput(ctx context.Context, actor model.Actor, outputRef string, req *model.CancelOutputRequest) (*model.OutputResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOutput] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	out, err := s.outputRepo.GetByReferenceForUpdateTx(ctx, tx, outputRef)
	if err != nil {
		logger.Error("[CancelOutput] get output", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if out == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if out.Status == constant.OutputStatusCanceled {
		return nil, errors.SetCustomError(constant.ErrInvalidOutputStatus)
	}
	wasValidated := out.Status == constant.OutputStatusValidated
	if wasValidated && !actor.HasRole(constant.RoleWarehouseSupervisor) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	now := time.Now()
	var snapshots []model.VariantQuantity

	// A PENDING output never touched stock, so there is nothing to reverse.
	if out.Status != constant.OutputStatusPending {
		items, err := s.itemRepo.GetByOutputForUpdateTx(ctx, tx, out.ID)
		if err != nil {
			logger.Error("[CancelOutput] get items", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		transitions := make(map[transitionKey]int)
		itemIDs := make([]uint64, 0, len(items))
		for _, item := range items {
			from, err := reversalSource(item.State)
			if err != nil {
				logger.Error("[CancelOutput] unexpected item state",
					zap.Uint64("item_id", item.ID), zap.String("state", string(item.State)))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			transitions[transitionKey{item.VariantID, item.ProductID, from}]++
			itemIDs = append(itemIDs, item.ID)

			// Reversed items keep their current location (nil once withdrawn)
			// and re-enter stock through the receiving workflow.
			if err := s.itemRepo.UpdateStateLocationTx(ctx, tx, item.ID, constant.ItemStatePendingReception, item.LocationID); err != nil {
				logger.Error("[CancelOutput] update item", zap.Uint64("item_id", item.ID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}

		if err := s.applyTransitions(ctx, tx, transitions, constant.ItemStatePendingReception); err != nil {
			logger.Error("[CancelOutput] apply quantity transitions", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		rec := &model.Reception{
			Reference: reference.GenerateReception(now),
			Type:      constant.ReceptionTypeInternalProblem,
			Status:    constant.ReceptionStatusPending,
			OutputID:  &out.ID,
			CreatedBy: actor.ID,
			CreatedAt: now,
		}
		receptionID, err := s.receptionRepo.InsertReceptionTx(ctx, tx, rec)
		if err != nil {
			logger.Error("[CancelOutput] insert reception", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.receptionRepo.InsertReceptionItemsTx(ctx, tx, receptionID, itemIDs); err != nil {
			logger.Error("[CancelOutput] insert reception items", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		if wasValidated {
			snapshots, err = s.quantityRepo.GetVariantSnapshotsTx(ctx, tx, variantIDs(items))
			if err != nil {
				logger.Error("[CancelOutput] read quantity snapshots", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	if err := s.outputRepo.CancelTx(ctx, tx, out.ID, actor.ID, req.Reason, now); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrConcurrentModification)
		}
		logger.Error("[CancelOutput] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOutput] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateDetailCache(ctx, out.ID)
	if wasValidated {
		s.publishQuantitySync(out.Reference, snapshots)
	}

	return &model.OutputResponse{
		ID:             out.ID,
		Reference:      out.Reference,
		Barcode:        out.Barcode,
		Type:           string(out.Type),
		Status:         constant.OutputStatusName[constant.OutputStatusCanceled],
		StoragePointID: out.StoragePointID,
	}, nil
}

func (s *outputAppImpl) GetOutput(ctx context.Context, id uint64) (*model.OutputDetail, error) {
	key := detailCacheKey(id)
	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(ctx, key); err == nil && cached != "" {
			var detail model.OutputDetail
			if err := json.Unmarshal([]byte(cached), &detail); err == nil {
				return &detail, nil
			}
		}
	}

	detail, err := s.outputRepo.GetDetail(ctx, id)
	if err != nil {
		logger.Error("[GetOutput] get detail", zap.Uint64("output_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if s.cacheRepo != nil {
		if payload, err := json.Marshal(detail); err == nil {
			if err := s.cacheRepo.SetWithTTL(ctx, key, string(payload), s.config.Cache.OutputDetailTTL); err != nil {
				logger.Warn("[GetOutput] cache set", zap.String("error", err.Error()))
			}
		}
	}

	return detail, nil
}

// applyTransitions flushes the accumulated counter pairs of one call. Every
// transition hits variant and product level inside the surrounding
// transaction, per the quantity aggregate discipline.
func (s *outputAppImpl) applyTransitions(ctx context.Context, tx *sqlx.Tx, transitions map[transitionKey]int, to constant.ItemState) error {
	for key, qty := range transitions {
		if err := s.quantityRepo.ApplyTransitionTx(ctx, tx, key.variantID, key.productID, key.from, to, qty); err != nil {
			return err
		}
	}
	return nil
}

// reversalSource yields the counter to decrement when canceling an output,
// based on how far the item progressed. Both cancel paths share it.
func reversalSource(state constant.ItemState) (constant.ItemState, error) {
	switch state {
	case constant.ItemStateReserved:
		return constant.ItemStateReserved, nil
	case constant.ItemStateGotOut:
		return constant.ItemStateGotOut, nil
	}
	return "", fmt.Errorf("state %s has no cancel reversal", state)
}

func matchLine(lines []model.OutputLine, confirmedByLine map[uint64]int, variantID uint64) (uint64, bool) {
	for _, line := range lines {
		if line.VariantID != variantID {
			continue
		}
		if confirmedByLine[line.ID] < line.Quantity {
			return line.ID, true
		}
	}
	return 0, false
}

func hasVariant(lines []model.OutputLine, variantID uint64) bool {
	for _, line := range lines {
		if line.VariantID == variantID {
			return true
		}
	}
	return false
}

func variantIDs(items []model.ProductItem) []uint64 {
	seen := make(map[uint64]bool, len(items))
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		if !seen[item.VariantID] {
			seen[item.VariantID] = true
			ids = append(ids, item.VariantID)
		}
	}
	return ids
}

func detailCacheKey(id uint64) string {
	return fmt.Sprintf("output:detail:%d", id)
}

func (s *outputAppImpl) invalidateDetailCache(ctx context.Context, id uint64) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(ctx, detailCacheKey(id)); err != nil {
		logger.Warn("[OutputApp] cache invalidate", zap.Uint64("output_id", id), zap.String("error", err.Error()))
	}
}

// publishQuantitySync pushes changed counters to the external catalog. This
// is fire-and-forget: failures are logged and never fail the operation.
func (s *outputAppImpl) publishQuantitySync(outputRef string, variants []model.VariantQuantity) {
	if s.publisher == nil || len(variants) == 0 {
		return
	}
	msg := rabbitmq.CatalogQuantityMessage{
		OutputReference: outputRef,
		Variants:        variants,
		SyncedAt:        time.Now(),
	}
	if err := s.publisher.PublishQuantitySync(msg); err != nil {
		logger.Error("[OutputApp] publish quantity sync", zap.String("output_ref", outputRef), zap.String("error", err.Error()))
	}
}
