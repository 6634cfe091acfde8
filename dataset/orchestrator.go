package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cwru-sdle/rxnkg/chem"
	"github.com/cwru-sdle/rxnkg/graph"
	"github.com/cwru-sdle/rxnkg/kg"
	"github.com/cwru-sdle/rxnkg/metric"
	"github.com/cwru-sdle/rxnkg/ontology"
	"github.com/cwru-sdle/rxnkg/record"
)

// Options configures a Processor.
type Options struct {
	// Format selects the linked-data serialization.
	Format graph.Format
	// OutputDir receives one document per successful reaction.
	OutputDir string
	// ErrorLogDir receives per-dataset log files and the index CSV.
	ErrorLogDir string
	// Metrics is optional; nil disables instrumentation.
	Metrics *metric.Metrics
	// Logger is the run-level logger; defaults to slog.Default().
	Logger *slog.Logger
}

// Processor runs the per-reaction conversion pipeline over datasets.
// The ontology model is loaded once and shared read-only; all other
// state is scoped to a single reaction, so one failed reaction leaks
// nothing into the next.
type Processor struct {
	builder *kg.Builder
	opts    Options
}

// NewProcessor creates a Processor over a loaded ontology model.
func NewProcessor(model *ontology.Model, norm chem.Normalizer, opts Options) *Processor {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = graph.FormatTurtle
	}
	return &Processor{
		builder: kg.NewBuilder(model, norm),
		opts:    opts,
	}
}

// Failure records one reaction that could not be converted.
type Failure struct {
	ReactionID string
	Reason     string
}

// Result summarizes one dataset run.
type Result struct {
	DatasetID string
	Index     *Index
	Failures  []Failure
	Written   int
}

// RunSummary aggregates a whole run over one or more dataset files.
type RunSummary struct {
	RunID           string
	Index           *Index
	Results         []*Result
	DatasetFailures map[string]string
}

// Run processes every dataset file in order and flushes the aggregated
// index CSV at the end. The index is written on every exit path,
// cancellation included, so everything that succeeded is always
// accounted for. A dataset that fails to load is recorded and skipped;
// Run returns an error only for run-level failures (index flush).
func (p *Processor) Run(ctx context.Context, paths []string) (summary *RunSummary, err error) {
	summary = &RunSummary{
		RunID:           uuid.NewString(),
		Index:           NewIndex(),
		DatasetFailures: make(map[string]string),
	}
	logger := p.opts.Logger.With(slog.String("run_id", summary.RunID))

	defer func() {
		indexPath := filepath.Join(p.opts.ErrorLogDir, "output_logs", "dataset_reactions.csv")
		if werr := summary.Index.WriteCSV(indexPath); werr != nil {
			logger.Error("failed to write dataset index", slog.String("error", werr.Error()))
			if err == nil {
				err = werr
			}
		} else {
			logger.Info("wrote dataset index",
				slog.String("path", indexPath),
				slog.Int("rows", summary.Index.Len()))
		}
	}()

	for _, path := range paths {
		if ctx.Err() != nil {
			logger.Warn("run cancelled", slog.String("error", ctx.Err().Error()))
			break
		}
		ds, lerr := record.LoadDataset(path)
		if lerr != nil {
			logger.Error("failed to load dataset",
				slog.String("path", path),
				slog.String("error", lerr.Error()))
			summary.DatasetFailures[path] = lerr.Error()
			if p.opts.Metrics != nil {
				p.opts.Metrics.DatasetsProcessed.WithLabelValues("failure").Inc()
			}
			continue
		}
		res, perr := p.ProcessDataset(ctx, ds)
		if perr != nil {
			summary.DatasetFailures[path] = perr.Error()
			if p.opts.Metrics != nil {
				p.opts.Metrics.DatasetsProcessed.WithLabelValues("failure").Inc()
			}
			continue
		}
		summary.Results = append(summary.Results, res)
		summary.Index.Merge(res.Index)
		if p.opts.Metrics != nil {
			p.opts.Metrics.DatasetsProcessed.WithLabelValues("success").Inc()
		}
	}

	return summary, err
}

// ProcessDataset converts every reaction of one loaded dataset. Each
// reaction runs the isolated pipeline build, validate, serialize, write;
// any failure is captured, logged with the reaction's context, and the
// loop continues. The per-dataset logger is released on all exit paths.
func (p *Processor) ProcessDataset(ctx context.Context, ds *record.Dataset) (*Result, error) {
	shortDS := record.ShortID(ds.DatasetID)

	dsLogger, closer, err := newDatasetLogger(p.opts.ErrorLogDir, shortDS)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	if err := os.MkdirAll(p.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	dsLogger.Info("dataset processing started",
		slog.String("dataset_id", ds.DatasetID),
		slog.Int("reactions", len(ds.Reactions)),
		slog.String("format", string(p.opts.Format)))

	res := &Result{DatasetID: ds.DatasetID, Index: NewIndex()}

	for i := range ds.Reactions {
		if ctx.Err() != nil {
			dsLogger.Warn("dataset processing cancelled",
				slog.Int("remaining", len(ds.Reactions)-i))
			break
		}
		rxn := &ds.Reactions[i]
		start := time.Now()

		dsLogger.Info("processing reaction",
			slog.Int("position", i),
			slog.String("reaction_id", rxn.ReactionID))

		if failure := p.processReaction(ctx, ds.DatasetID, rxn, res, dsLogger); failure != nil {
			res.Failures = append(res.Failures, *failure)
			dsLogger.Error("reaction failed",
				slog.String("reaction_id", failure.ReactionID),
				slog.String("error", failure.Reason))
			if p.opts.Metrics != nil {
				p.opts.Metrics.ReactionsProcessed.WithLabelValues(shortDS, "failure").Inc()
			}
		} else if p.opts.Metrics != nil {
			p.opts.Metrics.ReactionsProcessed.WithLabelValues(shortDS, "success").Inc()
		}
		if p.opts.Metrics != nil {
			p.opts.Metrics.ConversionDuration.WithLabelValues(shortDS).Observe(time.Since(start).Seconds())
		}
	}

	dsLogger.Info("dataset processing completed",
		slog.String("dataset_id", ds.DatasetID),
		slog.Int("succeeded", res.Index.Len()),
		slog.Int("failed", len(res.Failures)))

	return res, nil
}

// processReaction runs the isolated pipeline for one reaction and
// returns the captured failure, nil on success.
func (p *Processor) processReaction(ctx context.Context, datasetID string, rxn *record.Reaction, res *Result, logger *slog.Logger) *Failure {
	outcome := p.builder.Build(ctx, datasetID, rxn)
	for _, fe := range outcome.FieldErrors {
		logger.Warn("field skipped",
			slog.String("reaction_id", outcome.ReactionID),
			slog.String("path", fe.Path),
			slog.String("error", fe.Err.Error()))
	}
	if !outcome.Succeeded() {
		return &Failure{ReactionID: rxn.ReactionID, Reason: outcome.Err.Error()}
	}

	if err := outcome.Graph.Validate(); err != nil {
		return &Failure{ReactionID: rxn.ReactionID, Reason: err.Error()}
	}

	doc, err := graph.Serialize(outcome.Graph, p.opts.Format)
	if err != nil {
		return &Failure{ReactionID: rxn.ReactionID, Reason: err.Error()}
	}

	name := DocumentName(datasetID, rxn.ReactionID, p.opts.Format)
	if err := writeAtomic(filepath.Join(p.opts.OutputDir, name), []byte(doc)); err != nil {
		return &Failure{ReactionID: rxn.ReactionID, Reason: err.Error()}
	}

	if p.opts.Metrics != nil {
		p.opts.Metrics.TriplesEmitted.WithLabelValues(record.ShortID(datasetID)).
			Add(float64(len(outcome.Graph.Triples())))
	}

	res.Index.Append(record.ShortID(datasetID), rxn.ReactionID)
	res.Written++
	return nil
}

// DocumentName builds the deterministic output file name for a reaction.
func DocumentName(datasetID, reactionID string, format graph.Format) string {
	return "mds_dataset-" + record.ShortID(datasetID) +
		"_reaction-" + record.ShortID(reactionID) + format.Extension()
}

// writeAtomic writes the document through a temp file and rename so a
// cancelled or failed write never leaves a truncated document behind.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".rxnkg-*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish document: %w", err)
	}
	return nil
}
