package printprovider

import (
	"encoding/json"
	"sort"
	"strings"

	"ob-forms-backend/lib/utils/dateutil"
)

// MissingDateText is printed when no date can be resolved from any field; the
// render itself never fails.
const MissingDateText = "Date information missing"

// FormSource is the loosely typed field bag the date resolution runs against.
// Records coming from the store only carry the date_of_ob / dates_of_ob columns,
// but older exports and direct form payloads have stored dates under several other
// names, so the resolver chain has to keep covering all of them.
type FormSource map[string]interface{}

type dateResolver func(form FormSource) (display string, ok bool)

// dateResolvers is the resolution chain; order is user-visible and must not
// change. First resolver that reports ok wins.
var dateResolvers = []dateResolver{
	resolveStoredJSON,
	resolveParsedList,
	resolveCommaString,
	resolveSelectedValues,
	resolveSingleDateFields,
	resolveRawDateStr,
	resolveAnyDateField,
}

func ResolveDateDisplay(form FormSource) string {
	for _, resolve := range dateResolvers {
		if display, ok := resolve(form); ok && display != "" {
			return display
		}
	}
	return MissingDateText
}

// resolveStoredJSON parses the dates_of_ob column content.
func resolveStoredJSON(form FormSource) (string, bool) {
	raw, _ := form["dates_of_ob"].(string)
	if raw == "" {
		return "", false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil || len(dates) == 0 {
		return "", false
	}
	return dateutil.FormatDisplayList(dates), true
}

// resolveParsedList uses an already decoded datesOfOB list.
func resolveParsedList(form FormSource) (string, bool) {
	dates, ok := stringSlice(form["datesOfOB"])
	if !ok || len(dates) == 0 {
		return "", false
	}
	return dateutil.FormatDisplayList(dates), true
}

// resolveCommaString takes a pre-formatted multi-date string verbatim, no
// reformatting.
func resolveCommaString(form FormSource) (string, bool) {
	raw, _ := form["dateStr"].(string)
	if raw == "" || !strings.Contains(raw, ",") {
		return "", false
	}
	return raw, true
}

// resolveSelectedValues parses a JSON string of selected picker values.
func resolveSelectedValues(form FormSource) (string, bool) {
	raw, _ := form["selectedDatesValues"].(string)
	if raw == "" {
		return "", false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil || len(dates) == 0 {
		return "", false
	}
	return dateutil.FormatDisplayList(dates), true
}

// resolveSingleDateFields falls back through the four single-date field names.
func resolveSingleDateFields(form FormSource) (string, bool) {
	for _, key := range []string{"date", "dateOfBusiness", "dateOfOB", "date_of_ob"} {
		value, _ := form[key].(string)
		if display := dateutil.FormatDisplay(value); display != "" {
			return display, true
		}
	}
	return "", false
}

func resolveRawDateStr(form FormSource) (string, bool) {
	raw, _ := form["dateStr"].(string)
	if raw == "" {
		return "", false
	}
	return raw, true
}

// resolveAnyDateField scans every field whose name contains "date" and uses the
// first non-empty value it finds, stringified as needed.
func resolveAnyDateField(form FormSource) (string, bool) {
	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !strings.Contains(strings.ToLower(key), "date") {
			continue
		}
		switch value := form[key].(type) {
		case string:
			if value != "" {
				return value, true
			}
		case []string:
			if len(value) > 0 {
				return dateutil.FormatDisplayList(value), true
			}
		case []interface{}:
			if dates, ok := stringSlice(value); ok && len(dates) > 0 {
				return dateutil.FormatDisplayList(dates), true
			}
		case nil:
		default:
			raw, err := json.Marshal(value)
			if err == nil && string(raw) != "" && string(raw) != "null" {
				return string(raw), true
			}
		}
	}
	return "", false
}

func stringSlice(value interface{}) ([]string, bool) {
	switch list := value.(type) {
	case []string:
		return list, true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
