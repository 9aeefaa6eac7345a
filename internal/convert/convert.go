package convert

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/euromillions-csv/internal/csvio"
	"github.com/pfrederiksen/euromillions-csv/internal/draw"
	"github.com/pfrederiksen/euromillions-csv/internal/extract"
	"github.com/pfrederiksen/euromillions-csv/internal/logger"
	"github.com/pfrederiksen/euromillions-csv/internal/storage"
)

// Options configures a conversion run
type Options struct {
	InputDir   string
	Output     string
	Extensions []string
	// Sort processes files in name order instead of directory order
	Sort    bool
	Matcher extract.Matcher
	// Log receives progress diagnostics; nil uses the package default
	Log *logger.Logger
	// Metrics receives run counters; nil uses logger.DefaultMetrics()
	Metrics *logger.Metrics
}

// Summary reports what a run did
type Summary struct {
	Output     string `json:"output"`
	Files      int    `json:"files"`
	Unreadable int    `json:"unreadable"`
	Sections   int    `json:"sections"`
	Draws      int    `json:"draws"`
}

// OutputError reports a failure creating or writing the CSV file
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Run converts every snapshot in opts.InputDir into one CSV at opts.Output.
// The output file is created before any input is read and draws are written
// as each file is processed. A missing input directory is an error, where
// a plain glob over it would have produced a header-only CSV.
func Run(opts Options) (*Summary, error) {
	start := time.Now()

	log := opts.Log
	if log == nil {
		log = logger.Default()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = logger.DefaultMetrics()
	}

	dir, err := storage.New(opts.InputDir)
	if err != nil {
		return nil, err
	}

	files, err := dir.List(opts.Extensions, opts.Sort)
	if err != nil {
		return nil, err
	}
	log.Debug("Listed input files", logger.Fields{"dir": dir.Path(), "files": len(files)})

	summary, err := convert(dir, files, opts.Output, extract.New(opts.Matcher), log, metrics)
	if err != nil {
		log.Error("Could not write CSV file", logger.Fields{"output": opts.Output}, err)
		return nil, err
	}

	metrics.RecordTiming("convert.run", time.Since(start))
	log.Info("CSV file has been generated", logger.Fields{
		"output": opts.Output,
		"files":  summary.Files,
		"draws":  summary.Draws,
	})
	log.Debug("Run metrics", metrics.GetSnapshot().Fields())

	return summary, nil
}

// convert writes the header and then the draws of each file, in file order
func convert(dir *storage.Dir, files []string, output string, ex *extract.Extractor, log *logger.Logger, metrics *logger.Metrics) (summary *Summary, err error) {
	f, err := storage.Create(output)
	if err != nil {
		return nil, &OutputError{Path: output, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			summary, err = nil, &OutputError{Path: output, Err: cerr}
		}
	}()

	w := csvio.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return nil, &OutputError{Path: output, Err: err}
	}

	summary = &Summary{Output: output}
	for _, path := range files {
		draws := processFile(dir, path, ex, log, metrics, summary)
		for _, d := range draws {
			if err := w.Write(d); err != nil {
				return nil, &OutputError{Path: output, Err: err}
			}
		}
	}

	if err := w.Flush(); err != nil {
		return nil, &OutputError{Path: output, Err: err}
	}
	summary.Draws = w.Rows()
	return summary, nil
}

// processFile extracts the draws of one file. A file that cannot be read
// is logged and yields no draws.
func processFile(dir *storage.Dir, path string, ex *extract.Extractor, log *logger.Logger, metrics *logger.Metrics, summary *Summary) []draw.Draw {
	summary.Files++
	log.Info("Processing file", logger.Fields{"file": path})

	content, err := dir.Read(path)
	if err != nil {
		summary.Unreadable++
		metrics.IncrCounter("files.unreadable")
		log.Warn("Could not read file", logger.Fields{"file": path}, err)
		return nil
	}
	metrics.IncrCounter("files.processed")

	result := ex.Extract(content, storage.Label(path))
	log.Info("Found ball sections", logger.Fields{"file": path, "sections": result.Sections})
	log.Info("Extracted lottery draws", logger.Fields{"file": path, "draws": len(result.Draws)})

	metrics.AddCounter("sections.found", int64(result.Sections))
	metrics.AddCounter("draws.extracted", int64(len(result.Draws)))
	summary.Sections += result.Sections

	return result.Draws
}
