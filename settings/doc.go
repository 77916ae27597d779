// Package settings resolves the logger configuration from up to two
// app-settings sources.
//
// The primary source is the host process's configuration file. When it cannot
// be read, or holds no settings, the sidecar file next to the executable
// (<executable>.config) is tried. When neither yields settings, an empty set
// is used. Two keys are recognized:
//
//   - LogPath: base folder for log files; empty means the default root.
//   - EnableInfoLogFlag: informational logging is disabled only when the value
//     is exactly "F". Any other value, including absence, enables it.
//
// Resolution never fails. Every problem encountered along the way is written
// to the diagnostic stream and returned in [Result.Err] for inspection.
//
// Sources may be .NET-style XML files:
//
//	<configuration>
//	  <appSettings>
//	    <add key="LogPath" value="D:\logs\" />
//	    <add key="EnableInfoLogFlag" value="F" />
//	  </appSettings>
//	</configuration>
//
// or YAML (and therefore JSON) files with a top-level appSettings mapping:
//
//	appSettings:
//	  LogPath: /var/log/lab
//	  EnableInfoLogFlag: "F"
package settings
