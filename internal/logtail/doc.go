// Package logtail reads the tail of artsearch's own log file for the
// activity overlay.
//
// # Reading Log Files
//
// Read uses a ring buffer to extract the last maxLines from a file in one
// sequential pass:
//
//   - Uses O(maxLines) memory, not O(file size)
//   - Returns lines in chronological order
//   - Treats a missing file as empty (nothing logged yet)
//
// Example usage:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range lines {
//		fmt.Println(line.Level, line.Text)
//	}
//
// # Levels
//
// Each line carries the logrus level parsed from either the text formatter
// (level=warning) or the JSON formatter ("level":"warning"). The UI colors
// lines by level; unknown lines get an empty level.
//
// # Limitations
//
// Lines longer than 1 MiB fail the scan with "read log: token too long".
package logtail
