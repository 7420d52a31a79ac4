package platform

import (
	"github.com/k5aq/adifcount/pkg/adapters/fs"
	"github.com/k5aq/adifcount/pkg/core"
)

// New wires a counting service for the log at path.
//
//	svc, err := adifcount.New("wsjtx_log.adi", adifcount.WithHomeDir("~/WSJT-X/logs"))
//
// The path is resolved immediately so that a missing file is reported
// before any parsing is attempted.
func New(path string, opts ...Option) (*core.Service, error) {
	o := applyOptions(opts)

	src := o.source
	if src == nil {
		log := fs.NewLogFile(fs.Config{
			Path:         path,
			HomeDir:      o.homeDir,
			Logger:       o.logger,
			Debounce:     o.debounce,
			ErrorHandler: o.errorHandler,
		})
		if _, err := log.Resolve(); err != nil {
			return nil, err
		}
		src = log
	}

	return core.NewService(src, o.logger), nil
}

// Today returns the query date for "now" under the configured options.
func Today(opts ...Option) string {
	o := applyOptions(opts)
	return o.now().In(o.location).Format(core.DateLayout)
}
