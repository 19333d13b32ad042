package locale

// MessageID names one learner-facing message in the catalog.
type MessageID string

// Catalog message identifiers.
const (
	MsgTooSlow       MessageID = "too_slow"
	MsgAttemptedExit MessageID = "attempted_exit"
	MsgBlockedInput  MessageID = "blocked_input"
	MsgOutOfMemory   MessageID = "out_of_memory"
	MsgCodePrinted   MessageID = "code_printed"
	MsgPrintedExpect MessageID = "printed_expect"

	MsgHalted         MessageID = "halted"
	MsgHaltedWhy      MessageID = "halted_why"
	MsgHaltedHint     MessageID = "halted_hint"
	MsgStartedAs      MessageID = "started_as"
	MsgExitedWithCode MessageID = "exited_with_code"
	MsgFoundOnStderr  MessageID = "found_on_stderr"
	MsgEatingMemory   MessageID = "eating_memory"

	MsgUnexpectedLine  MessageID = "unexpected_line"
	MsgMissingLine     MessageID = "missing_line"
	MsgFullOutput      MessageID = "full_output"
	MsgExpectingLine   MessageID = "expecting_line"
	MsgYouGave         MessageID = "you_gave"
	MsgYouGaveNothing  MessageID = "you_gave_nothing"
	MsgLeadingSpace    MessageID = "leading_space"
	MsgTrailingSpace   MessageID = "trailing_space"
	MsgWrongAnswer     MessageID = "wrong_answer"
	MsgWrongAnswerGave MessageID = "wrong_answer_gave"
)

var english = map[MessageID]string{
	MsgTooSlow: "Your program looks too slow, looks like an infinite loop.",
	MsgAttemptedExit: "Your program tried to exit,\n" +
		"remove any call to `os.Exit` from your code,\n" +
		"else I won't be able to check it.",
	MsgBlockedInput:  "Don't read from standard input, there's no human to interact with here.",
	MsgOutOfMemory:   "Your program is eating up all the memory! Check for infinite loops maybe?",
	MsgCodePrinted:   "Your code printed:",
	MsgPrintedExpect: "Your code printed what I expected it to return, maybe you should return it instead of printing it?",

	MsgHalted:         "I had to halt your program, sorry...",
	MsgHaltedWhy:      "It were either too slow, or consuming too much resources.",
	MsgHaltedHint:     "Check for an infinite loop maybe?",
	MsgStartedAs:      "I started it as:",
	MsgExitedWithCode: "Your program exited with the error code: %d.",
	MsgFoundOnStderr:  "Found this on stderr:",
	MsgEatingMemory:   "Your program is eating up all the memory! Check for infinite loops maybe?",

	MsgUnexpectedLine:  "Unexpected line %d, you gave:",
	MsgMissingLine:     "Your output is too short, missing line %d, I'm expecting:",
	MsgFullOutput:      "Just in case it helps, here's your full output:",
	MsgExpectingLine:   "On line %d I'm expecting:",
	MsgYouGave:         "You gave:",
	MsgYouGaveNothing:  "You gave nothing.",
	MsgLeadingSpace:    "(Notice your line starts with a space, not mine.)",
	MsgTrailingSpace:   "(Notice your line ends with a space, not mine.)",
	MsgWrongAnswer:     "Looks like a wrong answer, expected:",
	MsgWrongAnswerGave: "you gave:",
}

var french = map[MessageID]string{
	MsgTooSlow: "Ton programme semble trop lent, on dirait une boucle infinie.",
	MsgAttemptedExit: "Ton programme a essayé de s'arrêter,\n" +
		"enlève tout appel à `os.Exit` de ton code,\n" +
		"sinon je ne peux pas le vérifier.",
	MsgBlockedInput:  "Ne lis pas l'entrée standard, il n'y a aucun humain avec qui interagir ici.",
	MsgOutOfMemory:   "Ton programme mange toute la mémoire ! Une boucle infinie peut-être ?",
	MsgCodePrinted:   "Ton code a affiché :",
	MsgPrintedExpect: "Ton code a affiché ce que j'attendais en retour, tu devrais peut-être le renvoyer plutôt que l'afficher ?",

	MsgHalted:         "J'ai dû arrêter ton programme, désolé...",
	MsgHaltedWhy:      "Il était soit trop lent, soit il consommait trop de ressources.",
	MsgHaltedHint:     "Une boucle infinie peut-être ?",
	MsgStartedAs:      "Je l'ai lancé ainsi :",
	MsgExitedWithCode: "Ton programme s'est arrêté avec le code d'erreur : %d.",
	MsgFoundOnStderr:  "J'ai trouvé ceci sur stderr :",
	MsgEatingMemory:   "Ton programme mange toute la mémoire ! Une boucle infinie peut-être ?",

	MsgUnexpectedLine:  "Ligne %d inattendue, tu as donné :",
	MsgMissingLine:     "Ta sortie est trop courte, il manque la ligne %d, j'attends :",
	MsgFullOutput:      "Au cas où ça aide, voici ta sortie complète :",
	MsgExpectingLine:   "À la ligne %d j'attends :",
	MsgYouGave:         "Tu as donné :",
	MsgYouGaveNothing:  "Tu n'as rien donné.",
	MsgLeadingSpace:    "(Remarque : ta ligne commence par une espace, pas la mienne.)",
	MsgTrailingSpace:   "(Remarque : ta ligne se termine par une espace, pas la mienne.)",
	MsgWrongAnswer:     "On dirait une mauvaise réponse, j'attendais :",
	MsgWrongAnswerGave: "tu as donné :",
}
