package repository

import "time"

// runAtLayout keeps sub-second precision so reruns order correctly.
const runAtLayout = time.RFC3339Nano

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

func reportKey(projectID, tool string) string {
	return projectID + "\x00" + tool
}
