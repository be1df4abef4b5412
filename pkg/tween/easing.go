package tween

import (
	"strings"
	"unicode"

	"github.com/gonewx/chestfx/pkg/utils"
)

type easingFamily struct {
	in, out, inOut utils.EasingFunc
}

// 名称别名 -> 缓动族
var easingFamilies = map[string]easingFamily{
	"cubic":       {utils.EaseInCubic, utils.EaseOutCubic, utils.EaseInOutCubic},
	"cub":         {utils.EaseInCubic, utils.EaseOutCubic, utils.EaseInOutCubic},
	"sin":         {utils.EaseInSine, utils.EaseOutSine, utils.EaseInOutSine},
	"sine":        {utils.EaseInSine, utils.EaseOutSine, utils.EaseInOutSine},
	"sinusoidal":  {utils.EaseInSine, utils.EaseOutSine, utils.EaseInOutSine},
	"bounce":      {utils.EaseInBounce, utils.EaseOutBounce, utils.EaseInOutBounce},
	"quad":        {utils.EaseInQuad, utils.EaseOutQuad, utils.EaseInOutQuad},
	"quadratic":   {utils.EaseInQuad, utils.EaseOutQuad, utils.EaseInOutQuad},
	"quart":       {utils.EaseInQuart, utils.EaseOutQuart, utils.EaseInOutQuart},
	"quartic":     {utils.EaseInQuart, utils.EaseOutQuart, utils.EaseInOutQuart},
	"quint":       {utils.EaseInQuint, utils.EaseOutQuint, utils.EaseInOutQuint},
	"quintic":     {utils.EaseInQuint, utils.EaseOutQuint, utils.EaseInOutQuint},
	"elastic":     {utils.EaseInElastic, utils.EaseOutElastic, utils.EaseInOutElastic},
	"expo":        {utils.EaseInExpo, utils.EaseOutExpo, utils.EaseInOutExpo},
	"exponential": {utils.EaseInExpo, utils.EaseOutExpo, utils.EaseInOutExpo},
	"circ":        {utils.EaseInCirc, utils.EaseOutCirc, utils.EaseInOutCirc},
	"circular":    {utils.EaseInCirc, utils.EaseOutCirc, utils.EaseInOutCirc},
	"back":        {utils.EaseInBack, utils.EaseOutBack, utils.EaseInOutBack},
}

// ParseEasing resolves names like "cubicOut", "sinInOut" or "backIn".
//
// The name is split before each capital letter: the first word is the
// family, the next one or two words the direction (In, Out, InOut). A
// missing or unknown direction means InOut. "linear", an empty name and any
// unknown family resolve to linear.
func ParseEasing(name string) utils.EasingFunc {
	words := splitCamel(name)
	if len(words) == 0 {
		return utils.EaseLinear
	}

	family, ok := easingFamilies[words[0]]
	if !ok {
		return utils.EaseLinear
	}

	end := len(words)
	if end > 3 {
		end = 3
	}
	switch strings.Join(words[1:end], "") {
	case "In":
		return family.in
	case "Out":
		return family.out
	}
	return family.inOut
}

// splitCamel splits "sinInOut" into ["sin", "In", "Out"]. A leading capital
// yields an empty first word, so "Cubic" is not a known family.
func splitCamel(s string) []string {
	if s == "" {
		return nil
	}
	var words []string
	start := 0
	for i, r := range s {
		if unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}
