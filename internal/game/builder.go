package game

// Builder collects settings fluently. Nothing is validated until Build.
type Builder struct {
	settings Settings
}

// NewBuilder starts from a 3x3 board, strike length 3 and players "X" and "O".
func NewBuilder() *Builder {
	return &Builder{settings: DefaultSettings()}
}

func (that *Builder) Width(width int) *Builder {
	that.settings.Width = width
	return that
}

func (that *Builder) Height(height int) *Builder {
	that.settings.Height = height
	return that
}

func (that *Builder) Size(width, height int) *Builder {
	return that.Width(width).Height(height)
}

func (that *Builder) StrikeLength(length int) *Builder {
	that.settings.StrikeLength = length
	return that
}

func (that *Builder) Player1(label string) *Builder {
	that.settings.Player1Label = label
	return that
}

func (that *Builder) Player2(label string) *Builder {
	that.settings.Player2Label = label
	return that
}

func (that *Builder) Players(player1, player2 string) *Builder {
	return that.Player1(player1).Player2(player2)
}

func (that *Builder) Settings() Settings {
	return that.settings
}

func (that *Builder) Build() (*Game, error) {
	return New(that.settings)
}
