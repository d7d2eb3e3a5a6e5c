// Package cli implements the pop-support command-line interface.
//
// # Commands
//
// generate-logs - Collect diagnostics into a support archive:
//
//	pop-support generate-logs [--timeout 10m] [--parallelism N] [--push oci://...] [BASE]
//
// Acquires every manifest source concurrently, packs what was collected into
// BASE/pop-support_<unix-time>.tar.xz (BASE defaults to $HOME), and prints
// exactly one line to stdout:
//
//	PATH /home/user/pop-support_1700000000.tar.xz
//
// Diagnostics and structured logs go to stderr. A whole-run failure prints
// the error and exits 1 without a PATH line.
//
// info - Show host identity:
//
//	pop-support info [--text] [--format yaml|json|table] [--output FILE]
//
// manifest - List collected sources:
//
//	pop-support manifest [--format yaml|json|table] [--output FILE]
//
// # Environment
//
//	LOG_LEVEL                     log level (debug, info, warn, error)
//	POP_SUPPORT_TIMEOUT           generate-logs --timeout
//	POP_SUPPORT_SOURCE_TIMEOUT    generate-logs --source-timeout
//	POP_SUPPORT_PARALLELISM       generate-logs --parallelism
//	POP_SUPPORT_PUSH              generate-logs --push
//	POP_SUPPORT_METRICS_FILE      generate-logs --metrics-file
package cli
