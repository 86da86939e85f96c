package httpserver

import (
	"net/http"

	"tripmate/internal/app"
)

func (h *Handlers) sendEmail(w http.ResponseWriter, r *http.Request) {
	var req emailTemplateRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	_, err := h.Booking.SendReceipt(r.Context(), app.ReceiptRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		HotelName:    req.HotelName,
		City:         req.City,
		CheckinDate:  req.CheckinDate,
		CheckoutDate: req.CheckoutDate,
		BookedDate:   req.BookedDate,
		BookedTime:   req.BookedTime,
		NumberOfDays: req.NumberOfDays,
		TotalAmount:  req.TotalAmount,
		Currency:     req.Currency,
		Breakdown:    req.Breakdown,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Email sent successfully",
	})
}
