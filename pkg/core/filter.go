package core

import "strings"

// UniqueCalls collects the distinct, uppercased CALL values of the records
// whose QSO_DATE equals date. Dates are compared as stored, with no
// normalization. Records lacking either field are skipped.
func UniqueCalls(records []Record, date string) CallSet {
	calls := NewCallSet()
	for _, r := range records {
		qsoDate, ok := r.Get(FieldQSODate)
		if !ok || qsoDate != date {
			continue
		}
		call := r.Call()
		if call == "" {
			continue
		}
		calls.Add(strings.ToUpper(call))
	}
	return calls
}
