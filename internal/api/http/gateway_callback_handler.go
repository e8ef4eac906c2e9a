package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/service"
)

const (
	// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
	SignatureHeader = "X-Gateway-Signature"

	maxCallbackBody = 1 << 20
)

type callbackRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=success failed cancelled"`
}

type errorBody struct {
	Kind     domain.ErrorKind `json:"kind"`
	Code     string           `json:"code"`
	Reason   string           `json:"reason"`
	EntityID int32            `json:"entity_id,omitempty"`
}

var kindStatuses = map[domain.ErrorKind]int{
	domain.KindValidation:      http.StatusBadRequest,
	domain.KindNotFound:        http.StatusNotFound,
	domain.KindUnauthorized:    http.StatusForbidden,
	domain.KindConflict:        http.StatusConflict,
	domain.KindExternalFailure: http.StatusBadGateway,
}

// GatewayCallbackHandler receives payment outcome notifications from the
// payment gateway. The endpoint is public; when a secret is configured every
// request must carry a valid signature.
type GatewayCallbackHandler struct {
	paymentSvc service.PaymentService
	secret     []byte
	validate   *validator.Validate
}

func NewGatewayCallbackHandler(paymentSvc service.PaymentService, webhookSecret string) *GatewayCallbackHandler {
	h := &GatewayCallbackHandler{paymentSvc: paymentSvc, validate: validator.New()}
	if webhookSecret != "" {
		h.secret = []byte(webhookSecret)
	}
	return h
}

func (h *GatewayCallbackHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCallbackBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidInput.WithReason("unreadable body"))
		return
	}

	if !h.validSignature(body, r.Header.Get(SignatureHeader)) {
		logger.Warn("Gateway callback rejected", "reason", "bad signature", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid signature"})
		return
	}

	var req callbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidInput.WithReason("malformed json"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidInput.WithReason("%s", err.Error()))
		return
	}

	p, err := h.paymentSvc.HandleGatewayCallback(r.Context(), domain.GatewayCallback{
		TransactionID: req.TransactionID,
		Outcome:       domain.GatewayOutcome(req.Status),
		Payload:       json.RawMessage(body),
	})
	if errors.Is(err, domain.ErrAlreadyProcessed) {
		// Gateways re-deliver until they see a 2xx.
		writeJSON(w, http.StatusOK, map[string]string{"status": "already_processed"})
		return
	}
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			code, ok := kindStatuses[de.Kind]
			if !ok {
				code = http.StatusInternalServerError
			}
			writeError(w, code, de)
			return
		}
		logger.Error("Gateway callback failed", "transaction_id", req.TransactionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "processed",
		"payment_id":     p.ID,
		"payment_status": p.Status,
	})
}

func (h *GatewayCallbackHandler) validSignature(body []byte, signature string) bool {
	if h.secret == nil {
		return true
	}
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// Sign returns the signature header value for body. Used by tooling and tests.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func writeError(w http.ResponseWriter, code int, de *domain.Error) {
	writeJSON(w, code, errorBody{Kind: de.Kind, Code: de.Code, Reason: de.Reason, EntityID: de.EntityID})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to write response", "error", err)
	}
}
