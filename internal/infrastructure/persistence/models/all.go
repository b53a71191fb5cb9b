package models

// All lists every model for schema migration, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&TrainingModuleModel{},
		&AudioSessionModel{},
		&MetricsModel{},
		&CommunityPostModel{},
	}
}
