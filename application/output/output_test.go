package output_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appoutput "github.com/EngNelson/erp-solution-sub003/application/output"
	"github.com/EngNelson/erp-solution-sub003/cmd/config"
	"github.com/EngNelson/erp-solution-sub003/constant"
	itemmocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/item"
	locationmocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/location"
	movementmocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/movement"
	outputmocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/output"
	quantitymocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/quantity"
	receptionmocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/reception"
	redismocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/redis"
	txmocks "github.com/EngNelson/erp-solution-sub003/mocks/repository/tx"
	"github.com/EngNelson/erp-solution-sub003/model"
	cerr "github.com/EngNelson/erp-solution-sub003/utils/errors"
)

// Note: output.go checks publisher and cacheRepo for nil before use, so tests
// pass a nil publisher and only wire the cache mock where cache calls are
// expected.

type fields struct {
	config        *config.Config
	txRepo        *txmocks.TxRepository
	outputRepo    *outputmocks.OutputRepository
	itemRepo      *itemmocks.ItemRepository
	locationRepo  *locationmocks.LocationRepository
	quantityRepo  *quantitymocks.QuantityRepository
	movementRepo  *movementmocks.MovementRepository
	receptionRepo *receptionmocks.ReceptionRepository
	cacheRepo     *redismocks.Repository
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Cache: config.CacheConfig{
				OutputDetailTTL: 5 * time.Minute,
			},
		},
		txRepo:        txmocks.NewTxRepository(t),
		outputRepo:    outputmocks.NewOutputRepository(t),
		itemRepo:      itemmocks.NewItemRepository(t),
		locationRepo:  locationmocks.NewLocationRepository(t),
		quantityRepo:  quantitymocks.NewQuantityRepository(t),
		movementRepo:  movementmocks.NewMovementRepository(t),
		receptionRepo: receptionmocks.NewReceptionRepository(t),
		cacheRepo:     redismocks.NewRepository(t),
	}
}

func newApp(f fields) appoutput.OutputApp {
	return appoutput.NewOutputApp(
		f.config, f.txRepo, f.outputRepo, f.itemRepo, f.locationRepo,
		f.quantityRepo, f.movementRepo, f.receptionRepo, f.cacheRepo, nil,
	)
}

func uptr(v uint64) *uint64 { return &v }

func assertErrCode(t *testing.T, err error, errType constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errType] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errType])
	}
}

func TestOutputApp_CreateOutput(t *testing.T) {
	actor := model.Actor{ID: 1, Name: "agent"}

	type args struct {
		req *model.CreateOutputRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: order backed output with storage point",
			args: args{
				req: &model.CreateOutputRequest{
					Type:            constant.OutputTypeFleet,
					StoragePointRef: "WH-DLA",
					OrderRef:        "SO-2024-001",
					Lines: []model.OutputLineRequest{
						{VariantID: 100, Quantity: 2},
					},
				},
			},
			mockCall: func(f fields) {
				f.locationRepo.On("GetStoragePointByReference", mock.Anything, "WH-DLA").
					Return(&model.StoragePoint{ID: 5, Reference: "WH-DLA"}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("InsertOutputTx", mock.Anything, tx, mock.MatchedBy(func(out *model.Output) bool {
					return out.Status == constant.OutputStatusPending &&
						out.Type == constant.OutputTypeFleet &&
						out.StoragePointID != nil && *out.StoragePointID == 5 &&
						out.OrderRef != nil && *out.OrderRef == "SO-2024-001" &&
						out.CreatedBy == 1 &&
						out.Reference != "" && out.Barcode != ""
				})).Return(uint64(42), nil).Once()

				f.outputRepo.On("InsertLinesTx", mock.Anything, tx, uint64(42), []model.OutputLine{
					{VariantID: 100, Quantity: 2, Position: 1},
				}).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: internal need without order reference",
			args: args{
				req: &model.CreateOutputRequest{
					Type: constant.OutputTypeInternalNeed,
					Lines: []model.OutputLineRequest{
						{VariantID: 100, Quantity: 1},
						{VariantID: 101, Quantity: 3},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("InsertOutputTx", mock.Anything, tx, mock.MatchedBy(func(out *model.Output) bool {
					return out.Status == constant.OutputStatusPending && out.StoragePointID == nil && out.OrderRef == nil
				})).Return(uint64(43), nil).Once()

				f.outputRepo.On("InsertLinesTx", mock.Anything, tx, uint64(43), []model.OutputLine{
					{VariantID: 100, Quantity: 1, Position: 1},
					{VariantID: 101, Quantity: 3, Position: 2},
				}).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: no lines",
			args: args{
				req: &model.CreateOutputRequest{
					Type: constant.OutputTypeOther,
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown type",
			args: args{
				req: &model.CreateOutputRequest{
					Type:  constant.OutputType("BOGUS"),
					Lines: []model.OutputLineRequest{{VariantID: 100, Quantity: 1}},
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: order backed type without order reference",
			args: args{
				req: &model.CreateOutputRequest{
					Type:  constant.OutputTypeFleet,
					Lines: []model.OutputLineRequest{{VariantID: 100, Quantity: 1}},
				},
			},
			wantErr: true,
			errCode: constant.ErrMissingOrderReference,
		},
		{
			name: "error: storage point reference not found",
			args: args{
				req: &model.CreateOutputRequest{
					Type:            constant.OutputTypeOther,
					StoragePointRef: "WH-NOPE",
					Lines:           []model.OutputLineRequest{{VariantID: 100, Quantity: 1}},
				},
			},
			mockCall: func(f fields) {
				f.locationRepo.On("GetStoragePointByReference", mock.Anything, "WH-NOPE").
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: BeginTx returns error",
			args: args{
				req: &model.CreateOutputRequest{
					Type:  constant.OutputTypeOther,
					Lines: []model.OutputLineRequest{{VariantID: 100, Quantity: 1}},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: InsertLinesTx fails and rolls back",
			args: args{
				req: &model.CreateOutputRequest{
					Type:  constant.OutputTypeOther,
					Lines: []model.OutputLineRequest{{VariantID: 100, Quantity: 1}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("InsertOutputTx", mock.Anything, tx, mock.Anything).Return(uint64(44), nil).Once()
				f.outputRepo.On("InsertLinesTx", mock.Anything, tx, uint64(44), mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.CreateOutput(context.Background(), actor, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.OutputStatusName[constant.OutputStatusPending] {
				t.Fatalf("CreateOutput() Status = %s, want PENDING", got.Status)
			}
			if got.Reference == "" || got.Barcode == "" {
				t.Fatal("CreateOutput() reference and barcode must be set")
			}
		})
	}
}

func TestOutputApp_ConfirmOutput(t *testing.T) {
	actor := model.Actor{ID: 7, Name: "picker"}
	outputRef := "OUT-240131-a3f29c"

	pendingOutput := func() *model.Output {
		return &model.Output{
			ID:             1,
			Reference:      outputRef,
			Barcode:        "OUTBARCODE000001",
			Type:           constant.OutputTypeOther,
			Status:         constant.OutputStatusPending,
			StoragePointID: uptr(5),
		}
	}

	type args struct {
		req *model.ConfirmOutputRequest
	}
	tests := []struct {
		name      string
		args      args
		mockCall  func(f fields)
		wantChild string
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: full confirm",
			args: args{
				req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 1, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1000, Barcode: "B1", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(5), nil).Once()
				f.locationRepo.On("GetDefaultLocationTx", mock.Anything, tx, uint64(5), constant.LocationPurposePreparation).
					Return(&model.Location{ID: 8, Name: "PREP-01"}, nil).Once()

				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1000), constant.ItemStateReserved, uptr(8)).
					Return(nil).Once()
				f.itemRepo.On("AttachToOutputTx", mock.Anything, tx, uint64(1000), uint64(1)).Return(nil).Once()

				f.movementRepo.On("InsertMovementsTx", mock.Anything, tx, mock.MatchedBy(func(ms []model.StockMovement) bool {
					return len(ms) == 1 &&
						ms[0].MovementType == constant.MovementTypeInternal &&
						ms[0].TriggerType == constant.MovementTriggerOutputConfirm &&
						*ms[0].SourceLocationID == 7 && *ms[0].TargetLocationID == 8 &&
						ms[0].ProductItemID == 1000
				})).Return(nil).Once()
				f.quantityRepo.On("ApplyTransitionTx", mock.Anything, tx, uint64(100), uint64(200),
					constant.ItemStateAvailable, constant.ItemStateReserved, 1).Return(nil).Once()
				f.locationRepo.On("ApplyTotalItemsDeltasTx", mock.Anything, tx, map[uint64]int{7: -1, 8: 1}).
					Return(nil).Once()

				f.outputRepo.On("ConfirmTx", mock.Anything, tx, uint64(1), uint64(7), mock.Anything).Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: partial confirm spawns pending child and infers storage point",
			args: args{
				req: &model.ConfirmOutputRequest{Barcodes: []string{"B1", "B2"}, PartialAllowed: true},
			},
			mockCall: func(f fields) {
				out := pendingOutput()
				out.StoragePointID = nil

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(out, nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 3, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1001, Barcode: "B1", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B2").Return(&model.ProductItem{
					ID: 1002, Barcode: "B2", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(5), nil).Twice()
				f.locationRepo.On("GetDefaultLocationTx", mock.Anything, tx, uint64(5), constant.LocationPurposePreparation).
					Return(&model.Location{ID: 8, Name: "PREP-01"}, nil).Once()

				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1001), constant.ItemStateReserved, uptr(8)).
					Return(nil).Once()
				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1002), constant.ItemStateReserved, uptr(8)).
					Return(nil).Once()
				f.itemRepo.On("AttachToOutputTx", mock.Anything, tx, uint64(1001), uint64(1)).Return(nil).Once()
				f.itemRepo.On("AttachToOutputTx", mock.Anything, tx, uint64(1002), uint64(1)).Return(nil).Once()

				f.movementRepo.On("InsertMovementsTx", mock.Anything, tx, mock.MatchedBy(func(ms []model.StockMovement) bool {
					return len(ms) == 2
				})).Return(nil).Once()
				f.quantityRepo.On("ApplyTransitionTx", mock.Anything, tx, uint64(100), uint64(200),
					constant.ItemStateAvailable, constant.ItemStateReserved, 2).Return(nil).Once()

				f.outputRepo.On("UpdateLineQuantityTx", mock.Anything, tx, uint64(10), 2).Return(nil).Once()
				f.outputRepo.On("InsertOutputTx", mock.Anything, tx, mock.MatchedBy(func(child *model.Output) bool {
					return child.Status == constant.OutputStatusPending &&
						child.Reference == outputRef+"/1" &&
						child.ParentID != nil && *child.ParentID == 1 &&
						child.StoragePointID != nil && *child.StoragePointID == 5
				})).Return(uint64(2), nil).Once()
				f.outputRepo.On("InsertLinesTx", mock.Anything, tx, uint64(2), []model.OutputLine{
					{VariantID: 100, Quantity: 1, Position: 1},
				}).Return(nil).Once()
				f.outputRepo.On("SetChildTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil).Once()

				f.locationRepo.On("ApplyTotalItemsDeltasTx", mock.Anything, tx, map[uint64]int{7: -2, 8: 2}).
					Return(nil).Once()
				f.outputRepo.On("SetStoragePointTx", mock.Anything, tx, uint64(1), uint64(5)).Return(nil).Once()
				f.outputRepo.On("ConfirmTx", mock.Anything, tx, uint64(1), uint64(7), mock.Anything).Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantChild: outputRef + "/1",
			wantErr:   false,
		},
		{
			name: "success: partial refused cancels the child",
			args: args{
				req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}, PartialAllowed: false},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 2, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1000, Barcode: "B1", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(5), nil).Once()
				f.locationRepo.On("GetDefaultLocationTx", mock.Anything, tx, uint64(5), constant.LocationPurposePreparation).
					Return(&model.Location{ID: 8}, nil).Once()

				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1000), constant.ItemStateReserved, uptr(8)).
					Return(nil).Once()
				f.itemRepo.On("AttachToOutputTx", mock.Anything, tx, uint64(1000), uint64(1)).Return(nil).Once()

				f.movementRepo.On("InsertMovementsTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.quantityRepo.On("ApplyTransitionTx", mock.Anything, tx, uint64(100), uint64(200),
					constant.ItemStateAvailable, constant.ItemStateReserved, 1).Return(nil).Once()

				f.outputRepo.On("UpdateLineQuantityTx", mock.Anything, tx, uint64(10), 1).Return(nil).Once()
				f.outputRepo.On("InsertOutputTx", mock.Anything, tx, mock.MatchedBy(func(child *model.Output) bool {
					return child.Status == constant.OutputStatusCanceled &&
						child.CancelReason != nil && *child.CancelReason == constant.CancelReasonPartialRefused &&
						child.CanceledBy != nil && *child.CanceledBy == 7
				})).Return(uint64(2), nil).Once()
				f.outputRepo.On("InsertLinesTx", mock.Anything, tx, uint64(2), []model.OutputLine{
					{VariantID: 100, Quantity: 1, Position: 1},
				}).Return(nil).Once()
				f.outputRepo.On("SetChildTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil).Once()

				f.locationRepo.On("ApplyTotalItemsDeltasTx", mock.Anything, tx, map[uint64]int{7: -1, 8: 1}).
					Return(nil).Once()
				f.outputRepo.On("ConfirmTx", mock.Anything, tx, uint64(1), uint64(7), mock.Anything).Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantChild: outputRef + "/1",
			wantErr:   false,
		},
		{
			name:    "error: no barcodes",
			args:    args{req: &model.ConfirmOutputRequest{}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: duplicate barcodes",
			args:    args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1", "B1"}}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: output already confirmed",
			args: args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}}},
			mockCall: func(f fields) {
				out := pendingOutput()
				out.Status = constant.OutputStatusConfirmed

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(out, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOutputStatus,
		},
		{
			name: "error: item already withdrawn",
			args: args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 1, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1000, Barcode: "B1", VariantID: 100, ProductID: 200,
					State: constant.ItemStateGotOut,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrItemNotMovable,
		},
		{
			name: "error: item belongs to another storage point",
			args: args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 1, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1000, Barcode: "B1", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(9), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStoragePointMismatch,
		},
		{
			name: "error: scanned variant not requested",
			args: args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 1, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1000, Barcode: "B1", VariantID: 999, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(5), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVariantNotRequested,
		},
		{
			name: "error: confirmed quantity exceeds the line",
			args: args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1", "B2"}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 1, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1001, Barcode: "B1", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B2").Return(&model.ProductItem{
					ID: 1002, Barcode: "B2", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(5), nil).Twice()
			},
			wantErr: true,
			errCode: constant.ErrQuantityExceeded,
		},
		{
			name: "error: staging location not configured",
			args: args{req: &model.ConfirmOutputRequest{Barcodes: []string{"B1"}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(pendingOutput(), nil).Once()
				f.outputRepo.On("GetLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OutputLine{
					{ID: 10, OutputID: 1, VariantID: 100, Quantity: 1, Position: 1},
				}, nil).Once()

				f.itemRepo.On("GetByBarcodeForUpdateTx", mock.Anything, tx, "B1").Return(&model.ProductItem{
					ID: 1000, Barcode: "B1", VariantID: 100, ProductID: 200,
					LocationID: uptr(7), State: constant.ItemStateAvailable,
				}, nil).Once()
				f.locationRepo.On("StoragePointOfLocationTx", mock.Anything, tx, uint64(7)).
					Return(uint64(5), nil).Once()
				f.locationRepo.On("GetDefaultLocationTx", mock.Anything, tx, uint64(5), constant.LocationPurposePreparation).
					Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrDefaultLocationNotConfigured,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.ConfirmOutput(context.Background(), actor, outputRef, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfirmOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.OutputStatusName[constant.OutputStatusConfirmed] {
				t.Fatalf("ConfirmOutput() Status = %s, want CONFIRMED", got.Status)
			}
			if got.ChildReference != tt.wantChild {
				t.Fatalf("ConfirmOutput() ChildReference = %s, want %s", got.ChildReference, tt.wantChild)
			}
		})
	}
}

func TestOutputApp_ValidateOutput(t *testing.T) {
	actor := model.Actor{ID: 7, Name: "agent"}
	outputRef := "OUT-240131-a3f29c"

	confirmedOutput := func() *model.Output {
		return &model.Output{
			ID:             1,
			Reference:      outputRef,
			Barcode:        "OUTBARCODE000001",
			Type:           constant.OutputTypeOther,
			Status:         constant.OutputStatusConfirmed,
			StoragePointID: uptr(5),
		}
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: two reserved items leave stock",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(confirmedOutput(), nil).Once()
				f.itemRepo.On("GetByOutputForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.ProductItem{
					{ID: 1001, VariantID: 100, ProductID: 200, LocationID: uptr(8), State: constant.ItemStateReserved},
					{ID: 1002, VariantID: 100, ProductID: 200, LocationID: uptr(8), State: constant.ItemStateReserved},
				}, nil).Once()

				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1001), constant.ItemStateGotOut, (*uint64)(nil)).
					Return(nil).Once()
				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1002), constant.ItemStateGotOut, (*uint64)(nil)).
					Return(nil).Once()

				f.movementRepo.On("InsertMovementsTx", mock.Anything, tx, mock.MatchedBy(func(ms []model.StockMovement) bool {
					if len(ms) != 2 {
						return false
					}
					for _, m := range ms {
						if m.MovementType != constant.MovementTypeOut ||
							m.TriggerType != constant.MovementTriggerOutputValidate ||
							m.TargetLocationID != nil ||
							*m.SourceLocationID != 8 {
							return false
						}
					}
					return true
				})).Return(nil).Once()
				f.quantityRepo.On("ApplyTransitionTx", mock.Anything, tx, uint64(100), uint64(200),
					constant.ItemStateReserved, constant.ItemStateGotOut, 2).Return(nil).Once()
				f.locationRepo.On("ApplyTotalItemsDeltasTx", mock.Anything, tx, map[uint64]int{8: -2}).
					Return(nil).Once()

				f.outputRepo.On("ValidateTx", mock.Anything, tx, uint64(1), uint64(7), "John Doe", mock.Anything).
					Return(nil).Once()
				f.quantityRepo.On("GetVariantSnapshotsTx", mock.Anything, tx, []uint64{100}).
					Return([]model.VariantQuantity{{VariantID: 100}}, nil).Once()

				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: output not found",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: output already validated",
			mockCall: func(f fields) {
				out := confirmedOutput()
				out.Status = constant.OutputStatusValidated

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(out, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOutputStatus,
		},
		{
			name: "error: status row was updated concurrently",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(confirmedOutput(), nil).Once()
				f.itemRepo.On("GetByOutputForUpdateTx", mock.Anything, tx, uint64(1)).
					Return([]model.ProductItem{}, nil).Once()
				f.movementRepo.On("InsertMovementsTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.locationRepo.On("ApplyTotalItemsDeltasTx", mock.Anything, tx, map[uint64]int{}).Return(nil).Once()
				f.outputRepo.On("ValidateTx", mock.Anything, tx, uint64(1), uint64(7), "John Doe", mock.Anything).
					Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrConcurrentModification,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.ValidateOutput(context.Background(), actor, outputRef, &model.ValidateOutputRequest{WithdrawnBy: "John Doe"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.OutputStatusName[constant.OutputStatusValidated] {
				t.Fatalf("ValidateOutput() Status = %s, want VALIDATED", got.Status)
			}
		})
	}
}

func TestOutputApp_CancelOutput(t *testing.T) {
	outputRef := "OUT-240131-a3f29c"

	outputWithStatus := func(status constant.OutputStatus) *model.Output {
		return &model.Output{
			ID:             1,
			Reference:      outputRef,
			Barcode:        "OUTBARCODE000001",
			Type:           constant.OutputTypeOther,
			Status:         status,
			StoragePointID: uptr(5),
		}
	}

	type args struct {
		actor  model.Actor
		reason string
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending output cancels without reversal",
			args: args{actor: model.Actor{ID: 7}, reason: "customer dropped the order"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(outputWithStatus(constant.OutputStatusPending), nil).Once()
				f.outputRepo.On("CancelTx", mock.Anything, tx, uint64(1), uint64(7), "customer dropped the order", mock.Anything).
					Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: confirmed output reverses reserved items into a reception",
			args: args{actor: model.Actor{ID: 7}, reason: "picking error"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(outputWithStatus(constant.OutputStatusConfirmed), nil).Once()
				f.itemRepo.On("GetByOutputForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.ProductItem{
					{ID: 1001, VariantID: 100, ProductID: 200, LocationID: uptr(8), State: constant.ItemStateReserved},
					{ID: 1002, VariantID: 100, ProductID: 200, LocationID: uptr(8), State: constant.ItemStateReserved},
				}, nil).Once()

				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1001), constant.ItemStatePendingReception, uptr(8)).
					Return(nil).Once()
				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1002), constant.ItemStatePendingReception, uptr(8)).
					Return(nil).Once()
				f.quantityRepo.On("ApplyTransitionTx", mock.Anything, tx, uint64(100), uint64(200),
					constant.ItemStateReserved, constant.ItemStatePendingReception, 2).Return(nil).Once()

				f.receptionRepo.On("InsertReceptionTx", mock.Anything, tx, mock.MatchedBy(func(rec *model.Reception) bool {
					return rec.Type == constant.ReceptionTypeInternalProblem &&
						rec.Status == constant.ReceptionStatusPending &&
						rec.OutputID != nil && *rec.OutputID == 1
				})).Return(uint64(55), nil).Once()
				f.receptionRepo.On("InsertReceptionItemsTx", mock.Anything, tx, uint64(55), []uint64{1001, 1002}).
					Return(nil).Once()

				f.outputRepo.On("CancelTx", mock.Anything, tx, uint64(1), uint64(7), "picking error", mock.Anything).
					Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: supervisor cancels a validated output",
			args: args{actor: model.Actor{ID: 9, Roles: []string{constant.RoleWarehouseSupervisor}}, reason: "wrong items withdrawn"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(outputWithStatus(constant.OutputStatusValidated), nil).Once()
				f.itemRepo.On("GetByOutputForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.ProductItem{
					{ID: 1001, VariantID: 100, ProductID: 200, State: constant.ItemStateGotOut},
				}, nil).Once()

				f.itemRepo.On("UpdateStateLocationTx", mock.Anything, tx, uint64(1001), constant.ItemStatePendingReception, (*uint64)(nil)).
					Return(nil).Once()
				f.quantityRepo.On("ApplyTransitionTx", mock.Anything, tx, uint64(100), uint64(200),
					constant.ItemStateGotOut, constant.ItemStatePendingReception, 1).Return(nil).Once()

				f.receptionRepo.On("InsertReceptionTx", mock.Anything, tx, mock.Anything).Return(uint64(56), nil).Once()
				f.receptionRepo.On("InsertReceptionItemsTx", mock.Anything, tx, uint64(56), []uint64{1001}).
					Return(nil).Once()
				f.quantityRepo.On("GetVariantSnapshotsTx", mock.Anything, tx, []uint64{100}).
					Return([]model.VariantQuantity{{VariantID: 100}}, nil).Once()

				f.outputRepo.On("CancelTx", mock.Anything, tx, uint64(1), uint64(9), "wrong items withdrawn", mock.Anything).
					Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, "output:detail:1").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: already canceled",
			args: args{actor: model.Actor{ID: 7}, reason: "no longer needed"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(outputWithStatus(constant.OutputStatusCanceled), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOutputStatus,
		},
		{
			name: "error: validated output needs the supervisor role",
			args: args{actor: model.Actor{ID: 7}, reason: "no longer needed"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(outputWithStatus(constant.OutputStatusValidated), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: status row was updated concurrently",
			args: args{actor: model.Actor{ID: 7}, reason: "no longer needed"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.outputRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, outputRef).
					Return(outputWithStatus(constant.OutputStatusPending), nil).Once()
				f.outputRepo.On("CancelTx", mock.Anything, tx, uint64(1), uint64(7), "no longer needed", mock.Anything).
					Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrConcurrentModification,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.CancelOutput(context.Background(), tt.args.actor, outputRef, &model.CancelOutputRequest{Reason: tt.args.reason})
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.OutputStatusName[constant.OutputStatusCanceled] {
				t.Fatalf("CancelOutput() Status = %s, want CANCELED", got.Status)
			}
		})
	}
}

func TestOutputApp_GetOutput(t *testing.T) {
	detail := &model.OutputDetail{
		ID:        1,
		Reference: "OUT-240131-a3f29c",
		Status:    "CONFIRMED",
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: served from cache",
			mockCall: func(f fields) {
				payload, _ := json.Marshal(detail)
				f.cacheRepo.On("Get", mock.Anything, "output:detail:1").Return(string(payload), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: cache miss falls back to the database",
			mockCall: func(f fields) {
				f.cacheRepo.On("Get", mock.Anything, "output:detail:1").Return("", nil).Once()
				f.outputRepo.On("GetDetail", mock.Anything, uint64(1)).Return(detail, nil).Once()
				f.cacheRepo.On("SetWithTTL", mock.Anything, "output:detail:1", mock.Anything, 5*time.Minute).
					Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: output does not exist",
			mockCall: func(f fields) {
				f.cacheRepo.On("Get", mock.Anything, "output:detail:1").Return("", nil).Once()
				f.outputRepo.On("GetDetail", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.GetOutput(context.Background(), 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Reference != detail.Reference {
				t.Fatalf("GetOutput() Reference = %s, want %s", got.Reference, detail.Reference)
			}
		})
	}
}
