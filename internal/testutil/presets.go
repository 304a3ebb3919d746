package testutil

// StandardCommit is the git commit of the standard dataset.
const StandardCommit = "0123456789abcdef0123456789abcdef01234567"

// WithStandardDocs adds a small slice of common.j and blizzard.j.
func (b *Builder) WithStandardDocs() *Builder {
	return b.
		WithCommit(StandardCommit).
		WithEntity("CreateUnit",
			Kind("native"), StartLine(2874),
			Annotation("source-file", "common.j"),
			Params(
				Param("id", "player", "The owner of the unit."),
				Param("unitid", "integer", "The rawcode of the unit type."),
				Param("x", "real", ""),
				Param("y", "real", ""),
				Param("face", "real", "Facing in degrees."),
			),
			Annotation("return-type", "unit"),
			Annotation("note", "Creates a unit at the given *coordinates*."),
		).
		WithEntity("GetLocalPlayer",
			Kind("native"), StartLine(4012),
			Annotation("source-file", "common.j"),
			Annotation("async", ""),
			Annotation("return-type", "player"),
		).
		WithEntity("BJDebugMsg",
			Kind("function"), StartLine(42),
			Annotation("source-file", "Blizzard.j"),
			Params(Param("msg", "string", "The message.")),
			Annotation("return-type", "nothing"),
		).
		WithEntity("unit", Kind("type"), StartLine(30), Annotation("source-file", "common.j")).
		WithEntity("player", Kind("type"), StartLine(12), Annotation("source-file", "common.j")).
		WithEntity("bj_lastCreatedUnit", Kind("global"), StartLine(300), Annotation("source-file", "Blizzard.j")).
		WithEntity("bjx", Kind("global"), StartLine(301), Annotation("source-file", "Blizzard.j")).
		WithEntity("PLAYER_NEUTRAL_AGGRESSIVE", Kind("global"), StartLine(120), Annotation("source-file", "common.j"))
}
