package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// AgeAt returns the age in whole years at the given reference date,
// decremented by one when the birthday has not yet occurred that year.
// Malformed dates format as age 0 rather than breaking a page render.
func AgeAt(dateOfBirth string, today time.Time) int {
	dob, err := time.Parse(time.DateOnly, dateOfBirth)
	if err != nil {
		return 0
	}
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

func Age(dateOfBirth string) int {
	return AgeAt(dateOfBirth, time.Now())
}

// FormatTime12Hour converts a 24-hour "HH:MM" into "H:MM AM/PM"; hour 0
// displays as 12. Unparseable input is passed through untouched.
func FormatTime12Hour(value string) string {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return value
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return value
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], suffix)
}

// FormatCurrencyINR renders an amount as Indian Rupees with en-IN digit
// grouping, matching Intl.NumberFormat("en-IN", {currency: "INR"}).
func FormatCurrencyINR(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatDisplayDate renders backend dates as "Jan 2, 2006". Both plain dates
// and RFC3339 timestamps appear in HIS responses.
func FormatDisplayDate(value string) string {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.Format("Jan 2, 2006")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("Jan 2, 2006")
	}
	return value
}

// FormatDisplayDateTime renders RFC3339 timestamps as "Jan 2, 2006, 3:04 PM".
func FormatDisplayDateTime(value string) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("Jan 2, 2006, 3:04 PM")
	}
	return value
}

// Initials derives an up-to-two-letter avatar monogram from a full name.
func Initials(fullName string) string {
	var b strings.Builder
	for _, part := range strings.Fields(fullName) {
		runes := []rune(part)
		b.WriteString(strings.ToUpper(string(runes[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
