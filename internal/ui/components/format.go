/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/ijuttt/countyscope/internal/processor"
)

// DescribeFile summarizes an input file for the status line, e.g.
// "counties-10m.json, 3.2 MB, Today at 09:12:44".
func DescribeFile(fi processor.FileInfo, now time.Time) string {
	if fi.Path == "" {
		return "none"
	}
	parts := []string{fi.Name}
	if fi.Size > 0 {
		parts = append(parts, FormatFileSize(fi.Size))
	}
	if !fi.ModTime.IsZero() {
		parts = append(parts, FormatDateTime(fi.ModTime, now))
	}
	return strings.Join(parts, ", ")
}

// -----------------------------------------------------------------------------
// Time Formatting Helpers
// -----------------------------------------------------------------------------

// FormatDateTime formats a file modification time relative to now.
func FormatDateTime(t, now time.Time) string {
	diff := now.Sub(t)

	if diff < 24*time.Hour && t.Day() == now.Day() {
		return "Today at " + t.Format("15:04:05")
	} else if diff < 48*time.Hour && t.Day() == now.Add(-24*time.Hour).Day() {
		return "Yesterday at " + t.Format("15:04:05")
	}
	return t.Format("02 Jan 2006, 15:04:05")
}

// FormatFileSize formats bytes as human-readable size.
// Sizes of 1024 bytes and up are shown with one decimal.
func FormatFileSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
