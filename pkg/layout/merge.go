package layout

// Merge folds src into dst. Modes of targets that dst lacks are adopted;
// for targets both have, levels from src replace the same levels in dst.
// Tables are merged entry by entry with src winning.
func Merge(dst, src *Layout) {
	for locale, name := range src.DisplayNames {
		if dst.DisplayNames == nil {
			dst.DisplayNames = map[string]string{}
		}
		dst.DisplayNames[locale] = name
	}

	for _, t := range src.Modes.Available() {
		if t.IsDesktop() {
			_ = dst.Modes.SetDesktopModes(t, mergeModes(dst.Modes.DesktopModes(t), src.Modes.DesktopModes(t)))
		} else {
			_ = dst.Modes.SetMobileModes(t, mergeModes(dst.Modes.MobileModes(t), src.Modes.MobileModes(t)))
		}
	}

	if src.Decimal != "" {
		dst.Decimal = src.Decimal
	}

	for target, levels := range src.Space {
		if dst.Space == nil {
			dst.Space = map[Target]map[string]string{}
		}
		if dst.Space[target] == nil {
			dst.Space[target] = map[string]string{}
		}
		for level, s := range levels {
			dst.Space[target][level] = s
		}
	}

	for target, levels := range src.DeadKeys {
		for level, keys := range levels {
			for _, k := range keys {
				dst.AddDeadKey(target, level, k)
			}
		}
	}

	for base, alternates := range src.LongPress {
		if dst.LongPress == nil {
			dst.LongPress = map[string]Alternates{}
		}
		dst.LongPress[base] = alternates
	}

	for deadKey, next := range src.Transforms {
		for input, output := range next {
			dst.SetTransform(deadKey, input, output)
		}
	}

	if src.Strings != nil {
		dst.Strings = src.Strings
	}
	if src.Targets != nil {
		if dst.Targets == nil {
			dst.Targets = &Targets{}
		}
		if src.Targets.Win != nil {
			dst.Targets.Win = src.Targets.Win
		}
		if src.Targets.Mim != nil {
			dst.Targets.Mim = src.Targets.Mim
		}
		if src.Targets.X11 != nil {
			dst.Targets.X11 = src.Targets.X11
		}
	}
}

func mergeModes[T any](dst, src *ModeMap[T]) *ModeMap[T] {
	if dst == nil {
		dst = NewModeMap[T]()
	}
	for _, mod := range src.Modifiers() {
		v, _ := src.Get(mod)
		dst.Set(mod, v)
	}
	return dst
}
