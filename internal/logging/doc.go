// Package logger provides leveled logging for sandboxctl commands.
//
// Verbosity is controlled by the --verbose and --debug command flags:
//
//	Logger.Infof()  // Shown with --verbose
//	Logger.Debugf() // Shown only with --debug
//	Logger.Warnf()  // Always shown, on stderr
//	Logger.Errorf() // Always shown, on stderr
//
// Commands build a logger in their PersistentPreRun and pass it down;
// subprocess output from git, ssh and the playbook is surfaced through
// Infof so it lands on stdout in verbose runs without drowning the
// status lines otherwise.
package logger
