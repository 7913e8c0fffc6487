package appcore

import (
	"io"

	"refasta/internal/output"
	"refasta/internal/pretty"
	"refasta/internal/records"
	"refasta/internal/stats"
	"refasta/internal/writers"
)

// ---------------- Record writer ----------------

type RecordWriterFactory struct {
	Format     string
	Sort       bool
	Header     bool
	Pretty     bool
	Wrap       int
	IncludeSeq bool
	PrettyOpt  pretty.Options
}

func NewRecordWriterFactory(format string, sort, header, prettyMode bool, wrap int, includeSeq bool, popt pretty.Options) RecordWriterFactory {
	return RecordWriterFactory{
		Format:     format,
		Sort:       sort,
		Header:     header,
		Pretty:     prettyMode,
		Wrap:       wrap,
		IncludeSeq: includeSeq,
		PrettyOpt:  popt,
	}
}

func (w RecordWriterFactory) NeedSeq() bool {
	if w.IncludeSeq {
		return true
	}
	if w.Format == output.FormatFASTA {
		return true
	}
	if w.Format == output.FormatText && w.Pretty {
		return true
	}
	return false
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- records.Record, <-chan error) {
	return writers.StartRecordWriterWithPrettyOptions(out, w.Format, w.Sort, w.Header, w.Pretty, w.Wrap, w.PrettyOpt, bufSize)
}

// ---------------- Stats writer ----------------

type StatsWriterFactory struct {
	Format    string
	Sort      bool
	Header    bool
	PerRecord bool
}

func NewStatsWriterFactory(format string, sort, header, perRecord bool) StatsWriterFactory {
	return StatsWriterFactory{Format: format, Sort: sort, Header: header, PerRecord: perRecord}
}

func (w StatsWriterFactory) NeedSeq() bool { return false } // counts run on the raw body view

func (w StatsWriterFactory) Start(out io.Writer, bufSize int) (chan<- stats.RecordStats, <-chan error) {
	return writers.StartStatsWriter(out, w.Format, w.Sort, w.Header, w.PerRecord, bufSize)
}
