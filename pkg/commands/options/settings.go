package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/entry"
)

// SettingsOptions
type SettingsOptions struct {
	Voice         string
	VoiceLanguage string
	StandupMode   string
}

func AddSettingsArgs(cmd *cobra.Command, o *SettingsOptions) {
	cmd.Flags().StringVar(&o.Voice, "voice", "",
		"Turn voice capture on or off.")
	cmd.Flags().StringVar(&o.VoiceLanguage, "voice-language", "",
		`Recognition language tag, example: --voice-language="en-GB".`)
	cmd.Flags().StringVar(&o.StandupMode, "standup-mode", "",
		"Show the snappy standup when recall runs without a command, on or off.")
}

// Patch returns the settings update and standup mode given on the command line.
func (o *SettingsOptions) Patch(cmd *cobra.Command) (entry.SettingsPatch, *bool, error) {
	var p entry.SettingsPatch
	flags := cmd.Flags()
	if flags.Changed("voice") {
		on, err := ParseSwitch(o.Voice)
		if err != nil {
			return p, nil, err
		}
		p.VoiceEnabled = &on
	}
	if flags.Changed("voice-language") {
		lang := strings.TrimSpace(o.VoiceLanguage)
		if lang == "" {
			return p, nil, fmt.Errorf("voice language can not be blank")
		}
		p.VoiceLanguage = &lang
	}
	var standup *bool
	if flags.Changed("standup-mode") {
		on, err := ParseSwitch(o.StandupMode)
		if err != nil {
			return p, nil, err
		}
		standup = &on
	}
	return p, standup, nil
}

// ParseSwitch reads on/off style values.
func ParseSwitch(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", raw)
}
