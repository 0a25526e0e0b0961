package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Receiptmart/internal/model"
)

var (
	// one or more digits, a literal point, exactly two digits
	twoDecimalsRegexp = regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)
	dateRegexp        = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	timeRegexp        = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

const dateLayout = "2006-01-02"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full, ordered set of violations found in one raw
// receipt. It implements error so the service can hand it back through the
// usual error return and handlers can pick it out with errors.As.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "invalid receipt: " + strings.Join(parts, "; ")
}

type ValidationOpts struct {
	// StrictTotal rejects receipts whose total does not equal the sum of
	// item prices. Off keeps the permissive behaviour.
	StrictTotal bool
}

// ValidateReceipt checks every field of the raw receipt independently and
// either returns the canonical form or the complete set of violations.
// Date and time are composed into a single UTC instant; the components are
// taken literally, never shifted through the host timezone.
func ValidateReceipt(raw model.RawReceipt, opts ValidationOpts) (model.Receipt, ValidationErrors) {
	var errs ValidationErrors

	if raw.Retailer == nil {
		errs = append(errs, FieldError{Field: "retailer", Message: "Required."})
	}

	var purchaseDate time.Time
	if raw.PurchaseDate == nil {
		errs = append(errs, FieldError{Field: "purchaseDate", Message: "Required."})
	} else if !dateRegexp.MatchString(*raw.PurchaseDate) {
		errs = append(errs, FieldError{Field: "purchaseDate", Message: "Invalid date."})
	} else {
		// time.Parse enforces the calendar, leap years included
		d, err := time.Parse(dateLayout, *raw.PurchaseDate)
		if err != nil {
			errs = append(errs, FieldError{Field: "purchaseDate", Message: "Invalid date."})
		} else {
			purchaseDate = d
		}
	}

	hour, minute := 0, 0
	if raw.PurchaseTime == nil {
		errs = append(errs, FieldError{Field: "purchaseTime", Message: "Required."})
	} else if !timeRegexp.MatchString(*raw.PurchaseTime) {
		errs = append(errs, FieldError{Field: "purchaseTime", Message: "Invalid time."})
	} else {
		hour, _ = strconv.Atoi((*raw.PurchaseTime)[:2])
		minute, _ = strconv.Atoi((*raw.PurchaseTime)[3:])
	}

	var total decimal.Decimal
	totalOK := false
	if raw.Total == nil {
		errs = append(errs, FieldError{Field: "total", Message: "Required."})
	} else if !twoDecimalsRegexp.MatchString(*raw.Total) {
		errs = append(errs, FieldError{Field: "total", Message: "Invalid total."})
	} else {
		total, _ = decimal.NewFromString(*raw.Total)
		totalOK = true
	}

	var items []model.Item
	itemsOK := false
	if raw.Items == nil {
		errs = append(errs, FieldError{Field: "items", Message: "Required."})
	} else {
		items = make([]model.Item, 0, len(*raw.Items))
		itemsOK = true
		for i, it := range *raw.Items {
			var item model.Item

			if it.ShortDescription == nil {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("items[%d].shortDescription", i),
					Message: "Required.",
				})
				itemsOK = false
			} else {
				item.ShortDescription = *it.ShortDescription
			}

			if it.Price == nil {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("items[%d].price", i),
					Message: "Required.",
				})
				itemsOK = false
			} else if !twoDecimalsRegexp.MatchString(*it.Price) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("items[%d].price", i),
					Message: "Invalid price.",
				})
				itemsOK = false
			} else {
				item.Price, _ = decimal.NewFromString(*it.Price)
			}

			items = append(items, item)
		}
	}

	if opts.StrictTotal && totalOK && itemsOK {
		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.Price)
		}
		if !total.Equal(sum) {
			errs = append(errs, FieldError{Field: "total", Message: "Total does not match sum of item prices."})
		}
	}

	if len(errs) != 0 {
		return model.Receipt{}, errs
	}

	return model.Receipt{
		Retailer: *raw.Retailer,
		PurchasedAt: time.Date(purchaseDate.Year(), purchaseDate.Month(), purchaseDate.Day(),
			hour, minute, 0, 0, time.UTC),
		Total: total,
		Items: items,
	}, nil
}
