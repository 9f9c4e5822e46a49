package model

// FetchResult records the outcome of a single script download
type FetchResult struct {
	Name string // Script file name
	URL  string // Download URL
	Path string // Destination path on disk (empty when the fetch failed)
	Size int64  // Downloaded size in bytes
	Err  error  // Non-nil when the fetch or write failed
}

// SetupReport represents the result of one bootstrap run
type SetupReport struct {
	RunID     string        // Unique ID for this run, used for log correlation
	ConfigDir string        // Resolved config directory
	Dirs      []string      // Directories ensured to exist, in creation order
	Scripts   []FetchResult // One entry per manifest script, in manifest order
}

// Failed returns the scripts that could not be installed
func (r *SetupReport) Failed() []FetchResult {
	var failed []FetchResult
	for _, s := range r.Scripts {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}
