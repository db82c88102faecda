package errors

// Error message constants for the impsort application
const (
	// File processing errors
	ErrMsgFailedToReadFile     = "failed to read file"
	ErrMsgFailedToDecodeFile   = "failed to decode syntax tree"
	ErrMsgFailedToEncodeFile   = "failed to encode syntax tree"
	ErrMsgFailedToWriteFile    = "failed to write file"
	ErrMsgFileWouldChange      = "imports are not sorted"
	ErrMsgInvalidImportOrder   = "invalid import order"
	ErrMsgFailedToLoadCache    = "failed to load cache"
	ErrMsgFailedToSaveCache    = "failed to save cache"
	ErrMsgFailedToStartWatcher = "failed to start file watcher"

	// Directory processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindFiles    = "failed to find syntax tree files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"
	ErrMsgFilesWouldChange     = "%d files have unsorted imports"

	// Configuration errors
	ErrMsgFailedToLoadDefaults = "failed to load defaults"
	ErrMsgFailedToReadConfig   = "error reading config file"
	ErrMsgFailedToLoadEnv      = "failed to load env vars"
	ErrMsgFailedToLoadFlags    = "failed to load flags"
	ErrMsgFailedToDecodeConfig = "unable to decode config"
	ErrMsgInvalidUnmatchedPos  = "invalid import_order_unmatched_position %q (want auto, first or last)"
	ErrMsgInvalidJobs          = "invalid jobs %d (must be zero or positive)"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files or specify a single file for stdout output."
	InfoMsgNoFilesFound                = "No syntax tree files found in directory: %s"
	InfoMsgFoundFiles                  = "Found %d syntax tree files in directory: %s"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgWouldChange                 = "Unsorted: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgSkippedCount                = ", %d unchanged since last run"
	InfoMsgErrorCount                  = ", %d files had errors"
	InfoMsgWatching                    = "Watching %s for changes (Ctrl+C to stop)"
)
