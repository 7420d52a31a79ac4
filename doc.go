// Package adifcount counts the unique stations worked on a given day.
//
// It reads an ADIF-style QSO log (as written by WSJT-X and most logging
// programs), extracts every record, and returns the set of distinct CALL
// values whose QSO_DATE matches the requested day.
//
// The parser is tolerant. It ignores line layout, skips anything that is
// not a well-formed <NAME:LEN>VALUE tag, and never fails a whole log
// because of one bad record.
//
// Usage:
//
//	svc, err := adifcount.New("wsjtx_log.adi",
//		adifcount.WithHomeDir("~/.local/share/WSJT-X"),
//		adifcount.WithLogger(logger),
//	)
//
//	calls, err := svc.UniqueCalls(ctx, adifcount.Today())
//	for _, call := range calls.Sorted() {
//		fmt.Println(call)
//	}
package adifcount
