// Package naming derives merged output paths and recognizes files that are
// already the result of a merge.
//
// Stem and extension follow the classic rule: the extension is the text
// after the last dot of the file name, and a single leading dot does not
// start one, so ".hidden" has stem ".hidden" and no extension.
//
//	MergedOutputPath("/tv/ep01.mkv") == "/tv/ep01_merged.mkv"
package naming
