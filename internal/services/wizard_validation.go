package services

import (
	"regexp"
	"strings"
	"time"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
	"coachbooking/internal/utils"
)

// Per-field messages shown inline at the field, matching the booking site's
// Vietnamese copy.
const (
	msgRequired       = "Vui lòng nhập thông tin này"
	msgChooseRequired = "Vui lòng chọn"
	msgSeatMin        = "Chọn ít nhất 1 chỗ"
	msgPhoneInvalid   = "Số điện thoại không hợp lệ"
	msgEmailInvalid   = "Email không hợp lệ"
	msgCardNumber     = "Số thẻ không hợp lệ, ví dụ: 4111 1111 1111 1111"
	msgCardExpiry     = "Ngày hết hạn không đúng, ví dụ: MM/YY => 12/24"
	msgCardCVV        = "Số CVV không hợp lệ, ví dụ: 123"
)

var (
	phoneRegex = regexp.MustCompile(`^(0|\+84)[35789][0-9]{8}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	visaRegex  = regexp.MustCompile(`^4[0-9]{3}([ -]?[0-9]{4}){3}$`)
)

// FieldErrors maps field name to inline message. A field listed here counts
// as touched-with-error; an empty map means the step validates.
type FieldErrors map[string]string

func (e FieldErrors) Any() bool { return len(e) > 0 }

func validateTripStep(d models.BookingDraft) FieldErrors {
	errs := FieldErrors{}
	if d.Trip == nil {
		errs["trip"] = msgChooseRequired
	}
	if d.Source == nil {
		errs["source"] = msgChooseRequired
	}
	if d.Destination == nil {
		errs["destination"] = msgChooseRequired
	}
	if _, err := utils.ParseDate(d.From); err != nil {
		errs["from"] = msgChooseRequired
	}
	if _, err := utils.ParseDate(d.To); err != nil {
		errs["to"] = msgChooseRequired
	}
	return errs
}

func validateSeatStep(d models.BookingDraft) FieldErrors {
	errs := FieldErrors{}
	if len(d.SeatNumber) < 1 {
		errs["seatNumber"] = msgSeatMin
	}
	return errs
}

func validatePaymentStep(d models.BookingDraft, now time.Time) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.PickUpAddress) == "" {
		errs["pickUpAddress"] = msgRequired
	}
	if strings.TrimSpace(d.FirstName) == "" {
		errs["firstName"] = msgRequired
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs["lastName"] = msgRequired
	}
	switch {
	case strings.TrimSpace(d.Phone) == "":
		errs["phone"] = msgRequired
	case !phoneRegex.MatchString(strings.TrimSpace(d.Phone)):
		errs["phone"] = msgPhoneInvalid
	}
	switch {
	case strings.TrimSpace(d.Email) == "":
		errs["email"] = msgRequired
	case !emailRegex.MatchString(strings.TrimSpace(d.Email)):
		errs["email"] = msgEmailInvalid
	}
	if d.PaymentMethod == "" {
		errs["paymentMethod"] = msgChooseRequired
	}
	if d.PaymentMethod == domain.PaymentMethodCard {
		validateCardFields(d, now, errs)
	}
	return errs
}

// Card fields only matter when the customer pays by card.
func validateCardFields(d models.BookingDraft, now time.Time, errs FieldErrors) {
	if strings.TrimSpace(d.NameOnCard) == "" {
		errs["nameOnCard"] = msgRequired
	}
	switch {
	case strings.TrimSpace(d.CardNumber) == "":
		errs["cardNumber"] = msgRequired
	case !visaRegex.MatchString(strings.TrimSpace(d.CardNumber)):
		errs["cardNumber"] = msgCardNumber
	}
	switch {
	case strings.TrimSpace(d.ExpiredDate) == "":
		errs["expiredDate"] = msgRequired
	default:
		exp, err := utils.ParseCardExpiry(d.ExpiredDate)
		if err != nil || !exp.After(now) {
			errs["expiredDate"] = msgCardExpiry
		}
	}
	switch {
	case strings.TrimSpace(d.CVV) == "":
		errs["cvv"] = msgRequired
	case len(strings.TrimSpace(d.CVV)) != 3:
		errs["cvv"] = msgCardCVV
	}
}
