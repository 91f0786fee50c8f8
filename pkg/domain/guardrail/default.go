package guardrail

// DefaultDefinition returns the demo guardrail that keeps a music bot away
// from heavy metal. The name carries a random suffix so reruns do not clash.
func DefaultDefinition() Definition {
	on := func() *bool { b := true; return &b }
	block := func() Toggle {
		return Toggle{InputAction: ActionBlock, OutputAction: ActionBlock, InputEnabled: on(), OutputEnabled: on()}
	}
	anonymize := Toggle{InputAction: ActionAnonymize, OutputAction: ActionAnonymize, InputEnabled: on(), OutputEnabled: on()}
	allModalities := []string{ModalityText, ModalityImage}

	return Definition{
		Name:        NewName("demo-guardrail"),
		Description: "Blocks any mention of heavy-metal music.",
		Topics: []Topic{
			{
				Name: "Heavy metal",
				Type: TopicTypeDeny,
				Definition: "Heavy metal is a style of rock music that features lyrics exploring the darker " +
					"corners of human experience, mythology, rebellion, social alienation, war, the occult",
				Examples: []string{"Create a playlist of heavy metal songs."},
			},
		},
		ContentFilters: []ContentFilter{
			{
				Type:             FilterHate,
				InputStrength:    StrengthHigh,
				OutputStrength:   StrengthHigh,
				InputModalities:  allModalities,
				OutputModalities: allModalities,
				Toggle:           block(),
			},
			{
				Type:             FilterPromptAttack,
				InputStrength:    StrengthHigh,
				OutputStrength:   StrengthNone,
				InputModalities:  allModalities,
				OutputModalities: allModalities,
				Toggle:           block(),
			},
		},
		Words: []Word{
			{Text: "metal", Toggle: block()},
			{Text: "rock music", Toggle: block()},
		},
		ManagedWordLists: []ManagedWordList{
			{Type: ManagedProfanity, Toggle: block()},
		},
		PIIEntities: []PIIEntity{
			{Type: "CREDIT_DEBIT_CARD_NUMBER", Action: ActionBlock, Toggle: block()},
			{Type: "EMAIL", Action: ActionAnonymize, Toggle: anonymize},
		},
		Regexes: []Regex{
			{
				Name:        "BITCOIN_WALLET",
				Description: "Bitcoin address (Base58 or Bech32)",
				Pattern:     `\b(?:[13][a-km-zA-HJ-NP-Z1-9]{25,34}|bc1[0-9a-z]{6,87})\b`,
				Action:      ActionAnonymize,
				Toggle:      anonymize,
			},
		},
		GroundingFilters: []GroundingFilter{
			{Type: GroundingTypeGrounding, Threshold: 0.8, Action: ActionBlock, Enabled: on()},
			{Type: GroundingTypeRelevance, Threshold: 0.5, Action: ActionBlock, Enabled: on()},
		},
		BlockedInputMessaging:   "Sorry, I can't answer questions about heavy-metal music.",
		BlockedOutputsMessaging: "Sorry, my answer mentioned heavy-metal music, so I had to block it.",
	}
}
