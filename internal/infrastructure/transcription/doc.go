// Package transcription adapts external speech-to-text engines to transcripts.Transcriber.
//
// The primary engine is whisper.cpp run in-process through its Go bindings (built with
// -tags whispercpp and linked against libwhisper). An OpenAI-compatible HTTP endpoint, the
// whisper command line tool and a no-op engine are available as alternatives.
package transcription
