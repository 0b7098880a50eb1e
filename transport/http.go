package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	outputapp "github.com/EngNelson/erp-solution-sub003/application/output"
	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
	utilsContext "github.com/EngNelson/erp-solution-sub003/utils/context"
	"github.com/EngNelson/erp-solution-sub003/utils/errors"
	validatorx "github.com/EngNelson/erp-solution-sub003/utils/validator"
)

type RestHandler struct {
	OutputApp outputapp.OutputApp
}

func NewTransport(OutputApp outputapp.OutputApp, jwtSecret, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OutputApp: OutputApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Output lifecycle
	mux.HandleFunc("/v1/outputs", rh.CreateOutput).Methods(http.MethodPost)
	mux.HandleFunc("/v1/outputs/{id:[0-9]+}", rh.GetOutput).Methods(http.MethodGet)
	mux.HandleFunc("/v1/outputs/{reference}/confirm", rh.ConfirmOutput).Methods(http.MethodPost)
	mux.HandleFunc("/v1/outputs/{reference}/validate", rh.ValidateOutput).Methods(http.MethodPost)
	mux.HandleFunc("/v1/outputs/{reference}/cancel", rh.CancelOutput).Methods(http.MethodPost)

	// Internal read endpoint for other services (API key, no JWT)
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/outputs/{id:[0-9]+}", rh.GetOutput).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(jwtSecret))

	return mux
}

// CreateOutput handler
// @Summary Create output
// @Description Create a withdrawal request in PENDING status
// @Tags Output
// @Accept json
// @Produce json
// @Param request body model.CreateOutputRequest true "Create Output Request"
// @Success 200 {object} model.OutputResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/outputs [post]
func (s *RestHandler) CreateOutput(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateOutputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OutputApp.CreateOutput(ctx, actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfirmOutput handler
// @Summary Confirm output
// @Description Match scanned barcodes to the output's lines and relocate them to staging
// @Tags Output
// @Accept json
// @Produce json
// @Param reference path string true "Output reference"
// @Param request body model.ConfirmOutputRequest true "Confirm Output Request"
// @Success 200 {object} model.OutputResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/outputs/{reference}/confirm [post]
func (s *RestHandler) ConfirmOutput(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ConfirmOutputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OutputApp.ConfirmOutput(ctx, actor, mux.Vars(r)["reference"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ValidateOutput handler
// @Summary Validate output
// @Description Final withdrawal of the confirmed items out of the warehouse
// @Tags Output
// @Accept json
// @Produce json
// @Param reference path string true "Output reference"
// @Param request body model.ValidateOutputRequest true "Validate Output Request"
// @Success 200 {object} model.OutputResponse
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/outputs/{reference}/validate [post]
func (s *RestHandler) ValidateOutput(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ValidateOutputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OutputApp.ValidateOutput(ctx, actor, mux.Vars(r)["reference"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelOutput handler
// @Summary Cancel output
// @Description Cancel an output, reversing already-applied stock effects through a compensating reception
// @Tags Output
// @Accept json
// @Produce json
// @Param reference path string true "Output reference"
// @Param request body model.CancelOutputRequest true "Cancel Output Request"
// @Success 200 {object} model.OutputResponse
// @Failure 403 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/outputs/{reference}/cancel [post]
func (s *RestHandler) CancelOutput(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CancelOutputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OutputApp.CancelOutput(ctx, actor, mux.Vars(r)["reference"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOutput handler
// @Summary Get output
// @Description Read projection of an output including lines, items, ledger entries and parent/child links
// @Tags Output
// @Produce json
// @Param id path int true "Output ID"
// @Success 200 {object} model.OutputDetail
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/outputs/{id} [get]
func (s *RestHandler) GetOutput(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OutputApp.GetOutput(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
