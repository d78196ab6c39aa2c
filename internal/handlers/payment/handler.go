package payment

import (
	"net/http"

	"zenstay/config"
	"zenstay/infras/otel"
	"zenstay/shared/constant"
	"zenstay/shared/validator"
	"zenstay/transport/http/middleware"
	"zenstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rs/zerolog/log"
)

// Handler exposes the payment facade. There is no gateway integration;
// initiate echoes the configured merchant descriptor and verify always
// reports success.
type Handler struct {
	cfg        *config.Config
	otel       otel.Otel
	middleware middleware.AuthRole
}

func New(cfg *config.Config, otel otel.Otel, mw middleware.AuthRole) Handler {
	return Handler{
		cfg:        cfg,
		otel:       otel,
		middleware: mw,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payment", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/initiate", handler.InitiatePayment)
		routerGroup.Post("/verify", handler.VerifyPayment)
	})
}

type InitiatePaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
}

type InitiatePaymentResponse struct {
	OrderRef          string  `json:"order_ref"`
	BookingID         string  `json:"booking_id"`
	Amount            float64 `json:"amount"`
	MerchantID        string  `json:"merchant_id"`
	Environment       string  `json:"environment"`
	Gateway           string  `json:"gateway"`
	GatewayMerchantID string  `json:"gateway_merchant_id"`
}

type VerifyPaymentRequest struct {
	OrderRef string `json:"order_ref" validate:"required"`
}

type VerifyPaymentResponse struct {
	OrderRef string `json:"order_ref"`
	Status   string `json:"status"`
}

// InitiatePayment starts a payment for a booking.
// @Summary Initiate a payment
// @Description Return the merchant descriptor and an order reference for the given booking.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body InitiatePaymentRequest true "Initiate Payment Request"
// @Success 200 {object} response.Data[InitiatePaymentResponse] "Payment initiated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payment/initiate [post]
// @Security BearerAuth
func (handler *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitiatePayment")
	defer scope.End()

	req := InitiatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res := InitiatePaymentResponse{
		OrderRef:          uuid.NewString(),
		BookingID:         req.BookingID,
		Amount:            req.Amount,
		MerchantID:        handler.cfg.Payment.MerchantID,
		Environment:       handler.cfg.Payment.Environment,
		Gateway:           handler.cfg.Payment.Gateway,
		GatewayMerchantID: handler.cfg.Payment.GatewayMerchantID,
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment initiated by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyPayment verifies a payment by order reference.
// @Summary Verify a payment
// @Description Verify the payment with the given order reference. Always reports SUCCESS.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} response.Data[VerifyPaymentResponse] "Payment verified"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payment/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	req := VerifyPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res := VerifyPaymentResponse{
		OrderRef: req.OrderRef,
		Status:   "SUCCESS",
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment verified by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
