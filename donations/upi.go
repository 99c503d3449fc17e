// Package donations builds UPI payment links for the emergency fund and keeps
// the fund's donation records.
package donations

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	Currency = "INR"

	genericScheme = "upi://pay?"
)

type Platform string

const (
	IOS     Platform = "ios"
	Android Platform = "android"
	Other   Platform = "other"
)

type Payment struct {
	Handle string
	Payee  string
	Amount float64
	Note   string
}

// Query encodes the UPI parameters in the order payment apps expect.
func (p Payment) Query() string {
	params := []struct{ key, value string }{
		{"pa", p.Handle},
		{"pn", p.Payee},
		{"am", strconv.FormatFloat(p.Amount, 'f', 2, 64)},
		{"cu", Currency},
		{"tn", p.Note},
	}
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.key+"="+escape(param.value))
	}
	return strings.Join(parts, "&")
}

// escape percent-encodes value, spaces included.
func escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// PaymentURI returns the generic upi:// payment link.
func PaymentURI(p Payment) string {
	return genericScheme + p.Query()
}

func DetectPlatform(userAgent string) Platform {
	switch {
	case strings.Contains(userAgent, "iPhone"), strings.Contains(userAgent, "iPad"), strings.Contains(userAgent, "iPod"):
		return IOS
	case strings.Contains(userAgent, "Android"):
		return Android
	default:
		return Other
	}
}

type Attempt struct {
	App string `json:"app"`
	URI string `json:"uri"`
	// Delay from the start of the dispatch.
	Delay time.Duration `json:"-"`
	// SkipIfHidden cancels the attempt when an earlier one already moved the
	// page to the background.
	SkipIfHidden bool `json:"skipIfHidden"`
}

type DispatchPlan struct {
	Platform      Platform      `json:"platform"`
	GenericURI    string        `json:"genericUri"`
	Attempts      []Attempt     `json:"attempts"`
	Fallback      bool          `json:"fallback"`
	FallbackDelay time.Duration `json:"-"`
	Message       string        `json:"message"`
}

var iosApps = []struct {
	name   string
	prefix string
}{
	{"Google Pay", "gpay://upi/pay?"},
	{"Paytm", "paytmmp://pay?"},
	{"PhonePe", "phonepe://pay?"},
}

const (
	iosAttemptInterval  = time.Second
	iosFallbackDelay    = 3 * time.Second
	androidFallbackTime = 2 * time.Second
)

// PlanDispatch decides which payment links the donation page opens and when.
func PlanDispatch(platform Platform, p Payment) DispatchPlan {
	plan := DispatchPlan{
		Platform:   platform,
		GenericURI: PaymentURI(p),
		Attempts:   []Attempt{},
	}

	switch platform {
	case IOS:
		for i, app := range iosApps {
			plan.Attempts = append(plan.Attempts, Attempt{
				App:          app.name,
				URI:          app.prefix + p.Query(),
				Delay:        time.Duration(i) * iosAttemptInterval,
				SkipIfHidden: i > 0,
			})
		}
		plan.Fallback = true
		plan.FallbackDelay = iosFallbackDelay
		plan.Message = "No UPI app opened. Please pay to " + p.Handle + " from any UPI app."
	case Android:
		plan.Attempts = append(plan.Attempts, Attempt{
			App: "UPI",
			URI: plan.GenericURI,
		})
		plan.Fallback = true
		plan.FallbackDelay = androidFallbackTime
		plan.Message = "No UPI app found. Please pay to " + p.Handle + " from any UPI app."
	default:
		plan.Message = "Open this page on your phone or pay to " + p.Handle + " from any UPI app."
	}
	return plan
}

type attemptJSON struct {
	Attempt
	DelayMs int64 `json:"delayMs"`
}

// MarshalJSON writes delays in milliseconds for the page script.
func (d DispatchPlan) MarshalJSON() ([]byte, error) {
	type plain DispatchPlan
	out := struct {
		plain
		Attempts        []attemptJSON `json:"attempts"`
		FallbackDelayMs int64         `json:"fallbackDelayMs"`
	}{
		plain:           plain(d),
		Attempts:        make([]attemptJSON, 0, len(d.Attempts)),
		FallbackDelayMs: d.FallbackDelay.Milliseconds(),
	}
	for _, a := range d.Attempts {
		out.Attempts = append(out.Attempts, attemptJSON{Attempt: a, DelayMs: a.Delay.Milliseconds()})
	}
	return json.Marshal(out)
}
