// Package logger appends attributed, timestamped entries to a per-user,
// per-day text file.
//
// Each unit of concurrent work owns its own [Logger], created with [New] and
// optionally carried in a [context.Context] with [NewContext]. A Logger
// resolves its configuration lazily, on the first write, and at most once:
//
//	<root>/<user>/Log-<dd-MM-yyyy>.txt
//
// where root is the LogPath setting or the platform default, and user is the
// sanitized name of the current user. The date is fixed when the Logger
// resolves, so a Logger that keeps writing past midnight keeps using the
// earlier file.
//
// Each entry is a header line naming the time and the calling function,
// the message, and a blank line:
//
//	15/10/2023 14:30:45 [github.com/acme/lab/robot.Arm.Move]
//	gripper stalled
//
// Writing never fails from the caller's point of view. Problems are reported
// on the diagnostic stream of package log and the entry is dropped.
package logger
