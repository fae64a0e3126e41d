package downloader

import "sort"

// SelectFormat picks exactly one format for the requested kind, or
// ErrNoSuitableFormat when nothing usable exists.
//
// Video picks favor progressive formats (both tracks in one container), so no
// muxing is needed downstream, narrowing to mp4 when available for player
// compatibility, then highest height with bitrate as tie-break. When no
// progressive format exists the single best overall format wins, which may
// lack audio.
//
// Audio picks filter to audio-only formats and take the highest bitrate,
// keeping provider order on ties so the result is stable across runs.
func SelectFormat(candidates []Format, kind Kind) (Format, error) {
	if kind == KindAudio {
		return selectAudio(candidates)
	}
	return selectVideo(candidates)
}

func selectVideo(candidates []Format) (Format, error) {
	progressive := filterFormats(candidates, func(f Format) bool {
		return f.HasVideo && f.HasAudio
	})
	if mp4 := filterFormats(progressive, func(f Format) bool {
		return f.Container == "mp4"
	}); len(mp4) > 0 {
		progressive = mp4
	}
	if len(progressive) > 0 {
		sortByQuality(progressive)
		return progressive[0], nil
	}

	// Degraded fallback: best overall, possibly without an audio track.
	if len(candidates) == 0 {
		return Format{}, ErrNoSuitableFormat
	}
	all := append([]Format(nil), candidates...)
	sortByQuality(all)
	return all[0], nil
}

func selectAudio(candidates []Format) (Format, error) {
	audio := filterFormats(candidates, func(f Format) bool {
		return f.HasAudio && !f.HasVideo
	})
	if len(audio) == 0 {
		return Format{}, ErrNoSuitableFormat
	}
	sort.SliceStable(audio, func(i, j int) bool {
		return audio[i].Bitrate > audio[j].Bitrate
	})
	return audio[0], nil
}

func sortByQuality(formats []Format) {
	sort.SliceStable(formats, func(i, j int) bool {
		if formats[i].Height != formats[j].Height {
			return formats[i].Height > formats[j].Height
		}
		return formats[i].Bitrate > formats[j].Bitrate
	})
}

func filterFormats(formats []Format, keep func(Format) bool) []Format {
	var out []Format
	for _, f := range formats {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
