// Package server exposes the calculator, application wizard, and auth stub
// over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/usign/mortgage-prequal/internal/application"
	"github.com/usign/mortgage-prequal/internal/auth"
	"github.com/usign/mortgage-prequal/pkg/affordability"
	"github.com/usign/mortgage-prequal/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	app     *application.Store
	auth    *auth.Manager
	version string
}

// NewHandler constructs the HTTP handler serving the prequalification API.
func NewHandler(logger *zap.Logger, app *application.Store, authManager *auth.Manager, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, app: app, auth: authManager, version: trimmedVersion}

	mux := http.NewServeMux()

	// Quick calculator, no account required
	mux.HandleFunc("/api/calculator", h.handleCalculator)

	// Application lifecycle
	mux.HandleFunc("/api/application", h.handleApplication)
	mux.HandleFunc("/api/application/personal", h.handleUpdatePersonal)
	mux.HandleFunc("/api/application/employment", h.handleUpdateEmployment)
	mux.HandleFunc("/api/application/assets", h.handleUpdateAssets)
	mux.HandleFunc("/api/application/debts", h.handleUpdateDebts)
	mux.HandleFunc("/api/application/documents", h.handleAddDocument)
	mux.HandleFunc("/api/application/save", h.handleSave)
	mux.HandleFunc("/api/application/summary", h.handleSummary)

	// Auth stub
	mux.HandleFunc("/api/auth/register", h.handleRegister)
	mux.HandleFunc("/api/auth/verify", h.handleVerify)
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/auth/logout", h.handleLogout)
	mux.HandleFunc("/api/auth/session", h.handleSession)

	// Preferences and metadata
	mux.HandleFunc("/api/language", h.handleLanguage)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calculatorRequest struct {
	MonthlyIncome    float64 `json:"monthlyIncome"`
	MonthlyDebts     float64 `json:"monthlyDebts"`
	DesiredHomePrice float64 `json:"desiredHomePrice"`
	DownPayment      float64 `json:"downPayment"`
	InterestRate     float64 `json:"interestRate,omitempty"`
}

type calculatorResponse struct {
	DTIPercent          float64                    `json:"dtiPercent"`
	Band                affordability.Band         `json:"band"`
	MaxLoanAmount       float64                    `json:"maxLoanAmount"`
	MaxHomePrice        float64                    `json:"maxHomePrice"`
	LoanAmount          float64                    `json:"loanAmount"`
	DownPaymentPercent  float64                    `json:"downPaymentPercent"`
	PrincipalInterest   float64                    `json:"principalInterest"`
	PropertyTaxes       float64                    `json:"propertyTaxes"`
	HomeInsurance       float64                    `json:"homeInsurance"`
	PMI                 float64                    `json:"pmi"`
	TotalMonthlyPayment float64                    `json:"totalMonthlyPayment"`
	AnnualRatePercent   float64                    `json:"annualRatePercent"`
	ClosingCostEstimate float64                    `json:"closingCostEstimate"`
	Suggestions         *affordability.Suggestions `json:"suggestions,omitempty"`
	Warnings            []string                   `json:"warnings,omitempty"`
}

func (h *handler) handleCalculator(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req calculatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleCalculator")
		return
	}

	input := affordability.Input{
		MonthlyIncome:     req.MonthlyIncome,
		MonthlyDebts:      req.MonthlyDebts,
		DesiredHomePrice:  req.DesiredHomePrice,
		DownPayment:       req.DownPayment,
		AnnualRatePercent: req.InterestRate,
	}
	summary := affordability.ComputeAffordability(input)

	resp := calculatorResponse{
		DTIPercent:          summary.DTIPercent,
		Band:                summary.Band,
		MaxLoanAmount:       summary.MaxLoanAmount,
		MaxHomePrice:        summary.MaxHomePrice,
		LoanAmount:          summary.LoanAmount,
		DownPaymentPercent:  summary.DownPaymentPercent,
		PrincipalInterest:   summary.PrincipalInterest,
		PropertyTaxes:       summary.PropertyTaxes,
		HomeInsurance:       summary.HomeInsurance,
		PMI:                 summary.PMI,
		TotalMonthlyPayment: summary.TotalMonthlyPayment,
		AnnualRatePercent:   summary.AnnualRatePercent,
		ClosingCostEstimate: affordability.EstimateClosingCosts(req.DesiredHomePrice),
		Suggestions:         affordability.SuggestImprovements(input),
		Warnings:            validation.ValidateDownPayment(req.DownPayment, req.DesiredHomePrice),
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleApplication(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, h.app.Data())
	case http.MethodDelete:
		if err := h.app.ClearApplication(); err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to clear application: %v", err), "server.handleApplication")
			return
		}
		h.writeJSON(w, http.StatusOK, h.app.Data())
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var update application.PersonalInfoUpdate
	if !h.decodeUpdate(w, r, &update, "server.handleUpdatePersonal") {
		return
	}
	h.app.UpdatePersonalInfo(update)
	h.writeJSON(w, http.StatusOK, sectionResponse{Application: h.app.Data()})
}

func (h *handler) handleUpdateEmployment(w http.ResponseWriter, r *http.Request) {
	var update application.EmploymentUpdate
	if !h.decodeUpdate(w, r, &update, "server.handleUpdateEmployment") {
		return
	}
	h.app.UpdateEmployment(update)

	data := h.app.Data()
	h.writeJSON(w, http.StatusOK, sectionResponse{
		Application: data,
		Warnings: validation.ValidateEmployment(
			data.Employment.Status,
			data.Employment.Employer,
			data.Employment.JobTitle,
			data.Employment.MonthlyIncome,
		),
	})
}

func (h *handler) handleUpdateAssets(w http.ResponseWriter, r *http.Request) {
	var update application.AssetsUpdate
	if !h.decodeUpdate(w, r, &update, "server.handleUpdateAssets") {
		return
	}
	h.app.UpdateAssets(update)

	data := h.app.Data()
	h.writeJSON(w, http.StatusOK, sectionResponse{
		Application: data,
		Warnings: validation.ValidateAmounts("assets", map[string]float64{
			"downPayment":      data.Assets.DownPayment,
			"savingsAccounts":  data.Assets.SavingsAccounts,
			"checkingAccounts": data.Assets.CheckingAccounts,
			"investments":      data.Assets.Investments,
			"retirement":       data.Assets.Retirement,
		}),
	})
}

func (h *handler) handleUpdateDebts(w http.ResponseWriter, r *http.Request) {
	var update application.DebtsUpdate
	if !h.decodeUpdate(w, r, &update, "server.handleUpdateDebts") {
		return
	}
	h.app.UpdateDebts(update)

	data := h.app.Data()
	h.writeJSON(w, http.StatusOK, sectionResponse{
		Application: data,
		Warnings: validation.ValidateAmounts("debts", map[string]float64{
			"creditCards":  data.Debts.CreditCards,
			"carLoans":     data.Debts.CarLoans,
			"studentLoans": data.Debts.StudentLoans,
			"otherDebts":   data.Debts.OtherDebts,
		}),
	})
}

func (h *handler) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleAddDocument")
		return
	}
	if req.Name == "" {
		h.respondError(w, http.StatusBadRequest, "document name is required", "server.handleAddDocument")
		return
	}

	h.app.AddDocument(req.Name)
	h.writeJSON(w, http.StatusOK, sectionResponse{Application: h.app.Data()})
}

type sectionResponse struct {
	Application application.Data `json:"application"`
	Warnings    []string         `json:"warnings,omitempty"`
}

func (h *handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err := h.app.SaveProgress(); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save application: %v", err), "server.handleSave")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

type summaryResponse struct {
	affordability.PrequalSummary
	LetterReference string `json:"letterReference"`
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, summaryResponse{
		PrequalSummary:  h.app.PrequalSummary(),
		LetterReference: uuid.NewString(),
	})
}

type registerRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleRegister")
		return
	}
	if req.Email == "" {
		h.respondError(w, http.StatusBadRequest, "email is required", "server.handleRegister")
		return
	}

	if err := h.auth.CreateAccount(req.Email, req.Phone); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create account: %v", err), "server.handleRegister")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "verification code sent"})
}

func (h *handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleVerify")
		return
	}

	if err := h.auth.VerifyCode(req.Code); err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			h.respondError(w, http.StatusBadRequest, "invalid verification code", "server.handleVerify")
			return
		}
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to verify code: %v", err), "server.handleVerify")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleLogin")
		return
	}
	if req.Email == "" {
		h.respondError(w, http.StatusBadRequest, "email is required", "server.handleLogin")
		return
	}

	if err := h.auth.Login(req.Email); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to log in: %v", err), "server.handleLogin")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "authenticated"})
}

func (h *handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if err := h.auth.Logout(); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to log out: %v", err), "server.handleLogout")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *handler) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"isAuthenticated": h.auth.IsAuthenticated(),
		"email":           h.auth.UserEmail(),
	})
}

func (h *handler) handleLanguage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, map[string]string{"language": h.auth.Language()})
	case http.MethodPut:
		var req struct {
			Language string `json:"language"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleLanguage")
			return
		}
		if req.Language == "" {
			h.respondError(w, http.StatusBadRequest, "language is required", "server.handleLanguage")
			return
		}
		if err := h.auth.SetLanguage(req.Language); err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to set language: %v", err), "server.handleLanguage")
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"language": req.Language})
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeUpdate applies the PUT-only guard and decodes the partial update
// body. Returns false if a response was already written.
func (h *handler) decodeUpdate(w http.ResponseWriter, r *http.Request, update interface{}, op string) bool {
	if r.Method != http.MethodPut {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(update); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message, op string) {
	h.logger.Warn(message,
		zap.String("op", op),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}
