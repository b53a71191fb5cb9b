// Package config loads the voice-training service configuration.
//
// Settings come from a YAML file (configs/rest-app.yaml by default) read with viper and
// may be overridden by VOICE_* environment variables, e.g. VOICE_DATABASE_DSN or
// VOICE_TRANSCRIPTION_PROVIDER. Each block (logger, database, audio_connector,
// transcription, analysis, upload) validates itself; RestConfig.Validate joins their errors.
// The CLI reuses the same file so both binaries see one database and one upload store.
package config
