package commands

// ArchiveStem exports archiveStem for testing.
var ArchiveStem = archiveStem //nolint:gochecknoglobals // test export

// SummaryError exports summaryError for testing.
var SummaryError = summaryError //nolint:gochecknoglobals // test export
