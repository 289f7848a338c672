// Package ffmpeg builds and executes the ffmpeg remux command that muxes one
// subtitle file into one video file.
//
// The argument vector always has the same skeleton:
//
//	[-y] [-itsoffset N] -i <video> -i <subtitle> -map 0 -map 1 -c copy
//	[-metadata:s:s:1 language=<lang>] <output>
//
// Streams are copied, never transcoded. -itsoffset applies to the input that
// follows it, which is the video, so a positive offset delays the video and
// subtitles appear earlier. That sign convention is intentional.
//
// Commands run through the [Executor] interface; [ExecRunner] is the
// os/exec implementation.
package ffmpeg
