package locale

import (
	"math/rand"
	"strings"

	"golang.org/x/text/language"
)

var congratsEnglish = struct {
	begin []string
	end   []string
}{
	begin: []string{"Congrats", "Nice job", "Well done", "Spot on", "Bravo", "Good"},
	end: []string{
		"Your exercise is OK",
		"Right answer",
		"Looks good to me",
		"Your answer is correct",
		"Correct answer",
	},
}

var congratsFrench = struct {
	begin []string
	end   []string
}{
	begin: []string{"Joli", "Bravo", "Bon boulot", "Bien joué", "Super", "Génial", "Bien"},
	end: []string{
		"Belle implémentation",
		"Bonne réponse",
		"C'est juste",
		"C'est bon pour moi",
		"Cette réponse est correcte",
		"C'est correct",
	},
}

const congratsEmojis = "     🚀🎉🙌🏆🥇🎯💯"

// Congrats generates a generic congratulation sentence in the active
// language.
func Congrats() string {
	pools := congratsEnglish
	sep := ""
	if Active() == language.French {
		pools = congratsFrench
		sep = " "
	}
	pick := func(items []string) string {
		return items[rand.Intn(len(items))]
	}
	bang := func() string {
		return strings.Repeat("!", 1+rand.Intn(5))
	}
	emojis := []rune(congratsEmojis)
	parts := []string{
		pick(pools.begin) + sep + bang(),
		pick(pools.end) + sep + bang(),
		string(emojis[rand.Intn(len(emojis))]),
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
