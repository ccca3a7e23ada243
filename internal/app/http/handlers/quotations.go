package handlers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"obiene/quotation_backend/internal/domain/quotation"
	"obiene/quotation_backend/internal/domain/quotation/export"
)

type generateResponse struct {
	QuoteNumber string  `json:"quote_number"`
	Total       float64 `json:"total"`
	JSONFile    string  `json:"json_file"`
	PDFFile     string  `json:"pdf_file"`
}

// Generate builds the record from the session, persists the JSON file,
// renders the PDF and only then advances the counter and clears the form.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Session.BuildRecord(time.Now())
	if err != nil {
		h.respondError(w, err)
		return
	}

	jsonPath, err := h.Store.Save(rec)
	if err != nil {
		h.respondError(w, err)
		return
	}
	pdfBytes, err := h.PDF.Generate(rec)
	if err != nil {
		h.respondError(w, err)
		return
	}
	pdfPath, err := h.Store.SavePDF(rec.QuoteNumber, pdfBytes)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.Session.CommitNumber()
	h.Session.Clear()

	h.Log.WithFields(logrus.Fields{
		"quote_number": rec.QuoteNumber,
		"client":       rec.ClientInfo.Name,
		"total":        rec.Total,
	}).Info("quotation generated")

	h.respondJSON(w, http.StatusCreated, generateResponse{
		QuoteNumber: rec.QuoteNumber,
		Total:       rec.Total,
		JSONFile:    filepath.Base(jsonPath),
		PDFFile:     filepath.Base(pdfPath),
	})
}

func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.LoadAll()
	if err != nil {
		h.respondError(w, err)
		return
	}
	records = quotation.Search(records, r.URL.Query().Get("q"))
	h.respondJSON(w, http.StatusOK, records)
}

// RegeneratePDF re-renders a stored record with its embedded company
// snapshot, so old documents keep the branding they were saved with.
func (h *Handlers) RegeneratePDF(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	rec, err := h.Store.Load(number)
	if err != nil {
		h.respondError(w, err)
		return
	}
	pdfBytes, err := h.PDF.Generate(rec)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if _, err := h.Store.SavePDF(number, pdfBytes); err != nil {
		h.Log.WithError(err).Warn("keep pdf on disk")
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="quotation_`+number+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func (h *Handlers) ExportHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.LoadAll()
	if err != nil {
		h.respondError(w, err)
		return
	}
	f, err := export.HistoryWorkbook(records)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="quotations.xlsx"`)
	if err := f.Write(w); err != nil {
		h.Log.WithError(err).Error("write workbook")
	}
}
