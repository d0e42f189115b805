package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{name: "defaults", settings: DefaultSettings()},
		{name: "rectangular board", settings: Settings{Width: 7, Height: 2, StrikeLength: 2, Player1Label: "a", Player2Label: "b"}},
		{name: "single cell", settings: Settings{Width: 1, Height: 1, StrikeLength: 1, Player1Label: "a", Player2Label: "b"}},
		{name: "zero width", settings: Settings{Width: 0, Height: 3, StrikeLength: 1, Player1Label: "a", Player2Label: "b"}, wantErr: apperror.ErrInvalidDimension},
		{name: "negative height", settings: Settings{Width: 3, Height: -2, StrikeLength: 1, Player1Label: "a", Player2Label: "b"}, wantErr: apperror.ErrInvalidDimension},
		{name: "zero strike", settings: Settings{Width: 3, Height: 3, StrikeLength: 0, Player1Label: "a", Player2Label: "b"}, wantErr: apperror.ErrInvalidStrikeLength},
		{name: "strike longer than height", settings: Settings{Width: 5, Height: 3, StrikeLength: 4, Player1Label: "a", Player2Label: "b"}, wantErr: apperror.ErrInvalidStrikeLength},
		{name: "strike longer than width", settings: Settings{Width: 2, Height: 5, StrikeLength: 3, Player1Label: "a", Player2Label: "b"}, wantErr: apperror.ErrInvalidStrikeLength},
		{name: "empty player 1", settings: Settings{Width: 3, Height: 3, StrikeLength: 3, Player1Label: "", Player2Label: "b"}, wantErr: apperror.ErrInvalidPlayerLabel},
		{name: "blank player 2", settings: Settings{Width: 3, Height: 3, StrikeLength: 3, Player1Label: "a", Player2Label: " \t\n"}, wantErr: apperror.ErrInvalidPlayerLabel},
		{name: "dimension checked first", settings: Settings{Width: 0, Height: 0, StrikeLength: 9, Player1Label: ""}, wantErr: apperror.ErrInvalidDimension},
		{name: "strike checked before labels", settings: Settings{Width: 2, Height: 2, StrikeLength: 3}, wantErr: apperror.ErrInvalidStrikeLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// When: nothing is overridden
		game, err := NewBuilder().Build()

		// Then: a 3x3 board with strike 3 and players X and O is built
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), game.Settings())
		assert.Equal(t, 3, game.Width())
		assert.Equal(t, 3, game.Height())
		assert.Equal(t, 3, game.StrikeLength())
	})

	t.Run("Overrides any subset", func(t *testing.T) {
		// When: only the size and the second player are overridden
		game, err := NewBuilder().Size(6, 4).Player2("Bob").Build()

		// Then: the rest keeps its defaults
		require.NoError(t, err)
		assert.Equal(t, Settings{Width: 6, Height: 4, StrikeLength: 3, Player1Label: "X", Player2Label: "Bob"}, game.Settings())
	})

	t.Run("Validation happens only on Build", func(t *testing.T) {
		// Given: a strike length set before the board is enlarged
		builder := NewBuilder().StrikeLength(5).Width(5)

		// When: the height is fixed last
		builder.Height(5)

		// Then: the final settings are valid
		game, err := builder.Build()
		require.NoError(t, err)
		assert.Equal(t, 5, game.StrikeLength())
	})

	t.Run("Build fails atomically", func(t *testing.T) {
		tests := []struct {
			name    string
			builder *Builder
			wantErr error
		}{
			{name: "zero width", builder: NewBuilder().Width(0), wantErr: apperror.ErrInvalidDimension},
			{name: "zero height", builder: NewBuilder().Height(0), wantErr: apperror.ErrInvalidDimension},
			{name: "strike above min size", builder: NewBuilder().Size(4, 10).StrikeLength(5), wantErr: apperror.ErrInvalidStrikeLength},
			{name: "blank player", builder: NewBuilder().Players("  ", "O"), wantErr: apperror.ErrInvalidPlayerLabel},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				game, err := tt.builder.Build()

				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, game)
			})
		}
	})
}
