package score

import (
	"strconv"
	"strings"
	"time"

	"github.com/parascreen/parascreen-api/schema"
	"github.com/parascreen/parascreen-api/utils"
)

// dateLayout matches the value format of an HTML date control.
const dateLayout = "2006-01-02"

// Validate inspects a raw submission against the domain constraints and
// collects every violation in field order: date of birth, anaemia status,
// haemoglobin, parasite count. It never stops at the first problem. On a
// clean pass it returns the typed input with the age derived against now;
// otherwise the input is nil and the messages are meant for display as-is.
func Validate(raw schema.RawSubmission, now time.Time) (*schema.PatientInput, []string) {
	var errs []string
	var in schema.PatientInput

	if dobText := strings.TrimSpace(raw.DateOfBirth); dobText == "" {
		errs = append(errs, "Date of birth is required.")
	} else if dob, err := time.Parse(dateLayout, dobText); err != nil {
		errs = append(errs, "Date of birth is not a valid date.")
	} else {
		in.DateOfBirth = dob
		in.Age = utils.AgeAt(dob, now)
		if in.Age < 0 {
			errs = append(errs, "Date of birth cannot be in the future.")
		} else if in.Age > schema.MaxAge {
			errs = append(errs, "Age cannot exceed 120 years.")
		}
	}

	switch status := schema.AnaemiaStatus(strings.TrimSpace(raw.AnaemiaStatus)); status {
	case schema.AnaemiaYes, schema.AnaemiaNo:
		in.AnaemiaStatus = status
	case "":
		errs = append(errs, "Please select an anaemia status.")
	default:
		errs = append(errs, "Anaemia status must be \"yes\" or \"no\".")
	}

	if hbText := strings.TrimSpace(raw.Haemoglobin); hbText == "" {
		errs = append(errs, "Haemoglobin level is required.")
	} else if hb, err := strconv.ParseFloat(hbText, 64); err != nil {
		errs = append(errs, "Haemoglobin level must be a number.")
	} else if !(hb >= schema.HaemoglobinMin && hb <= schema.HaemoglobinMax) {
		// written so that NaN and the infinities fail the range check:
		// ParseFloat accepts "NaN" and "Inf" as numbers
		errs = append(errs, "Haemoglobin level must be between 20 and 180 g/L.")
	} else {
		in.Haemoglobin = hb
	}

	if countText := strings.TrimSpace(raw.ParasiteCount); countText == "" {
		errs = append(errs, "Please select a parasite count.")
	} else if countText == schema.ParasiteCountNotAvailable {
		in.ParasiteCount = schema.ParasiteCount{}
	} else if count, err := strconv.Atoi(countText); err != nil || count < 0 {
		errs = append(errs, "Parasite count must be a non-negative whole number or \"not-available\".")
	} else {
		in.ParasiteCount = schema.ParasiteCount{Known: true, Count: count}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &in, nil
}
