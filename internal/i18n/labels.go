// Package i18n renders game status labels in the languages the site offers:
// English, Indonesian and Chinese.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

const (
	labelYourTurn     = "Your turn (X)"
	labelComputerTurn = "Computer's turn (O)"
	labelYouWin       = "You win!"
	labelYouLose      = "You lose!"
	labelDraw         = "Draw!"
)

// Supported - the first tag is the fallback.
var Supported = []language.Tag{
	language.English,
	language.Indonesian,
	language.Chinese,
}

var translations = map[language.Tag]map[string]string{
	language.Indonesian: {
		labelYourTurn:     "Giliranmu (X)",
		labelComputerTurn: "Giliran komputer (O)",
		labelYouWin:       "Kamu menang!",
		labelYouLose:      "Kamu kalah!",
		labelDraw:         "Seri!",
	},
	language.Chinese: {
		labelYourTurn:     "轮到你了 (X)",
		labelComputerTurn: "电脑的回合 (O)",
		labelYouWin:       "你赢了！",
		labelYouLose:      "你输了！",
		labelDraw:         "平局！",
	},
}

var (
	labels  = mustBuildCatalog()
	matcher = language.NewMatcher(Supported)
)

func mustBuildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	for tag, messages := range translations {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	return builder
}

// ParseTag - matches a language query value or an Accept-Language header
// against the supported languages.
func ParseTag(value string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return language.English
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.English
	}

	return Supported[index]
}

// Status - the label shown next to the board.
func Status(tag language.Tag, state entity.GameState) string {
	printer := message.NewPrinter(tag, message.Catalog(labels))

	return printer.Sprintf(statusKey(state))
}

func statusKey(state entity.GameState) string {
	switch state.Result {
	case entity.OutcomePlayerWin:
		return labelYouWin
	case entity.OutcomeOpponentWin:
		return labelYouLose
	case entity.OutcomeDraw:
		return labelDraw
	}

	if state.Turn == entity.TurnOpponent {
		return labelComputerTurn
	}

	return labelYourTurn
}
