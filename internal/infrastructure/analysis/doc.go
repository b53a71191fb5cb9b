// Package analysis computes pitch, loudness and brightness metrics for recordings.
//
// Audio is decoded with go-audio/wav; other containers are converted to WAV by ffmpeg
// first. F0 is estimated with YIN, loudness with frame RMS and brightness with the
// spectral centroid of a Hann-windowed STFT. All frame-based features use centered,
// zero-padded frames.
package analysis
