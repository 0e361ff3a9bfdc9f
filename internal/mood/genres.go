package mood

import "strings"

// genreAffinities is the static genre-to-mood table, built once and
// never written after init. Weights within a genre sum to 1.0 so every
// known genre contributes the same total mass before the aggregator
// applies its primary/secondary split. The table deliberately carries
// no positional weighting; ordering policy lives in the aggregator.
var genreAffinities = map[string]AffinityVector{
	// Pop
	"pop":        {happyIdx: 0.5, upbeatIdx: 0.5},
	"dance pop":  {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"synth-pop":  {upbeatIdx: 0.5, happyIdx: 0.3, energeticIdx: 0.2},
	"electropop": {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"indie pop":  {happyIdx: 0.5, calmIdx: 0.3, upbeatIdx: 0.2},
	"k-pop":      {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"power pop":  {happyIdx: 0.5, energeticIdx: 0.5},
	"britpop":    {happyIdx: 0.4, energeticIdx: 0.4, melancholicIdx: 0.2},

	// Rock
	"rock":             {energeticIdx: 0.7, angryIdx: 0.3},
	"classic rock":     {energeticIdx: 0.6, happyIdx: 0.4},
	"hard rock":        {energeticIdx: 0.6, angryIdx: 0.4},
	"indie rock":       {energeticIdx: 0.4, melancholicIdx: 0.3, happyIdx: 0.3},
	"alternative rock": {energeticIdx: 0.5, melancholicIdx: 0.3, angryIdx: 0.2},
	"garage rock":      {energeticIdx: 0.7, angryIdx: 0.3},
	"psychedelic rock": {calmIdx: 0.4, energeticIdx: 0.3, happyIdx: 0.3},
	"progressive rock": {energeticIdx: 0.5, melancholicIdx: 0.3, calmIdx: 0.2},
	"soft rock":        {calmIdx: 0.5, romanticIdx: 0.5},
	"post-rock":        {melancholicIdx: 0.5, calmIdx: 0.5},
	"grunge":           {angryIdx: 0.4, melancholicIdx: 0.4, energeticIdx: 0.2},

	// Punk and metal
	"punk":        {angryIdx: 0.5, energeticIdx: 0.5},
	"pop punk":    {energeticIdx: 0.6, angryIdx: 0.2, upbeatIdx: 0.2},
	"post-punk":   {melancholicIdx: 0.5, energeticIdx: 0.3, angryIdx: 0.2},
	"hardcore":    {angryIdx: 0.7, energeticIdx: 0.3},
	"metal":       {angryIdx: 0.6, energeticIdx: 0.4},
	"heavy metal": {angryIdx: 0.6, energeticIdx: 0.4},
	"death metal": {angryIdx: 0.8, energeticIdx: 0.2},
	"black metal": {angryIdx: 0.7, melancholicIdx: 0.3},
	"metalcore":   {angryIdx: 0.7, energeticIdx: 0.3},
	"industrial":  {angryIdx: 0.6, energeticIdx: 0.4},
	"emo":         {sadIdx: 0.5, melancholicIdx: 0.3, angryIdx: 0.2},
	"screamo":     {angryIdx: 0.6, sadIdx: 0.4},

	// Electronic
	"electronic":    {energeticIdx: 0.5, upbeatIdx: 0.5},
	"edm":           {energeticIdx: 0.6, upbeatIdx: 0.4},
	"house":         {energeticIdx: 0.5, upbeatIdx: 0.5},
	"deep house":    {calmIdx: 0.4, upbeatIdx: 0.3, energeticIdx: 0.3},
	"techno":        {energeticIdx: 0.7, upbeatIdx: 0.3},
	"trance":        {energeticIdx: 0.5, upbeatIdx: 0.3, calmIdx: 0.2},
	"electro":       {energeticIdx: 0.6, upbeatIdx: 0.4},
	"dubstep":       {energeticIdx: 0.6, angryIdx: 0.4},
	"drum and bass": {energeticIdx: 0.8, upbeatIdx: 0.2},
	"synthwave":     {upbeatIdx: 0.4, calmIdx: 0.3, energeticIdx: 0.3},
	"vaporwave":     {calmIdx: 0.6, melancholicIdx: 0.4},
	"ambient":       {calmIdx: 0.8, melancholicIdx: 0.2},
	"chillout":      {calmIdx: 0.8, happyIdx: 0.2},
	"downtempo":     {calmIdx: 0.7, melancholicIdx: 0.3},
	"trip hop":      {melancholicIdx: 0.5, calmIdx: 0.5},
	"lo-fi":         {calmIdx: 0.6, melancholicIdx: 0.4},

	// Hip hop
	"hip hop": {energeticIdx: 0.6, angryIdx: 0.2, upbeatIdx: 0.2},
	"rap":     {energeticIdx: 0.5, angryIdx: 0.3, upbeatIdx: 0.2},
	"trap":    {energeticIdx: 0.5, angryIdx: 0.5},
	"grime":   {angryIdx: 0.6, energeticIdx: 0.4},

	// Jazz, soul, and blues
	"jazz":        {calmIdx: 0.6, romanticIdx: 0.4},
	"smooth jazz": {calmIdx: 0.7, romanticIdx: 0.3},
	"blues":       {sadIdx: 0.5, melancholicIdx: 0.5},
	"soul":        {romanticIdx: 0.5, sadIdx: 0.3, calmIdx: 0.2},
	"neo soul":    {romanticIdx: 0.5, calmIdx: 0.5},
	"r&b":         {romanticIdx: 0.6, calmIdx: 0.4},
	"funk":        {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"disco":       {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"motown":      {happyIdx: 0.5, romanticIdx: 0.3, upbeatIdx: 0.2},
	"doo-wop":     {romanticIdx: 0.6, happyIdx: 0.4},
	"swing":       {upbeatIdx: 0.6, happyIdx: 0.4},
	"big band":    {upbeatIdx: 0.5, happyIdx: 0.5},

	// Folk, country, and acoustic
	"folk":              {calmIdx: 0.5, melancholicIdx: 0.3, happyIdx: 0.2},
	"indie folk":        {calmIdx: 0.5, melancholicIdx: 0.5},
	"singer-songwriter": {melancholicIdx: 0.4, calmIdx: 0.4, romanticIdx: 0.2},
	"acoustic":          {calmIdx: 0.6, romanticIdx: 0.4},
	"country":           {happyIdx: 0.4, sadIdx: 0.3, calmIdx: 0.3},
	"bluegrass":         {happyIdx: 0.6, energeticIdx: 0.4},
	"americana":         {calmIdx: 0.4, melancholicIdx: 0.3, happyIdx: 0.3},
	"ballad":            {romanticIdx: 0.6, sadIdx: 0.4},

	// Classical and instrumental
	"classical":    {calmIdx: 0.7, romanticIdx: 0.3},
	"piano":        {calmIdx: 0.6, romanticIdx: 0.2, melancholicIdx: 0.2},
	"instrumental": {calmIdx: 0.8, melancholicIdx: 0.2},
	"opera":        {romanticIdx: 0.5, melancholicIdx: 0.5},
	"soundtrack":   {melancholicIdx: 0.4, calmIdx: 0.4, energeticIdx: 0.2},
	"new age":      {calmIdx: 0.9, romanticIdx: 0.1},
	"meditation":   {calmIdx: 1.0},

	// Latin and world
	"latin":      {upbeatIdx: 0.4, romanticIdx: 0.3, energeticIdx: 0.3},
	"salsa":      {energeticIdx: 0.5, upbeatIdx: 0.3, romanticIdx: 0.2},
	"reggaeton":  {energeticIdx: 0.5, upbeatIdx: 0.5},
	"bossa nova": {calmIdx: 0.5, romanticIdx: 0.5},
	"samba":      {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"flamenco":   {romanticIdx: 0.5, energeticIdx: 0.3, melancholicIdx: 0.2},
	"tango":      {romanticIdx: 0.6, melancholicIdx: 0.4},
	"chanson":    {romanticIdx: 0.5, melancholicIdx: 0.5},
	"reggae":     {calmIdx: 0.5, happyIdx: 0.5},
	"ska":        {upbeatIdx: 0.6, energeticIdx: 0.4},
	"dancehall":  {upbeatIdx: 0.5, energeticIdx: 0.5},
	"afrobeat":   {upbeatIdx: 0.5, energeticIdx: 0.3, happyIdx: 0.2},
	"world":      {calmIdx: 0.5, happyIdx: 0.5},

	// Mood-adjacent niches
	"shoegaze":  {melancholicIdx: 0.6, calmIdx: 0.4},
	"dream pop": {calmIdx: 0.5, melancholicIdx: 0.3, romanticIdx: 0.2},
	"slowcore":  {sadIdx: 0.6, melancholicIdx: 0.4},
	"darkwave":  {melancholicIdx: 0.6, angryIdx: 0.2, sadIdx: 0.2},
	"gothic":    {melancholicIdx: 0.6, sadIdx: 0.4},
	"new wave":  {upbeatIdx: 0.5, energeticIdx: 0.3, melancholicIdx: 0.2},
	"gospel":    {happyIdx: 0.6, calmIdx: 0.4},
	"christian": {calmIdx: 0.5, happyIdx: 0.5},
	"christmas": {happyIdx: 0.7, calmIdx: 0.3},
}

// genreAliases folds common spelling variants onto table entries.
var genreAliases = map[string]string{
	"hip-hop":           "hip hop",
	"hiphop":            "hip hop",
	"rnb":               "r&b",
	"r n b":             "r&b",
	"drum & bass":       "drum and bass",
	"dnb":               "drum and bass",
	"d&b":               "drum and bass",
	"lofi":              "lo-fi",
	"lo fi":             "lo-fi",
	"synthpop":          "synth-pop",
	"kpop":              "k-pop",
	"alt rock":          "alternative rock",
	"alternative":       "alternative rock",
	"prog rock":         "progressive rock",
	"psych rock":        "psychedelic rock",
	"gothic rock":       "gothic",
	"goth":              "gothic",
	"chill":             "chillout",
	"chillwave":         "chillout",
	"edm music":         "edm",
	"electronica":       "electronic",
	"neo-soul":          "neo soul",
	"bossanova":         "bossa nova",
	"singer songwriter": "singer-songwriter",
}

// GenreVector looks up the mood affinities for a single genre string.
// Lookup is case-insensitive and whitespace-trimmed; unknown genres
// return the zero vector rather than an error, so malformed upstream
// tags can never fail a classification.
func GenreVector(genre string) AffinityVector {
	key := strings.ToLower(strings.TrimSpace(genre))
	if canonical, ok := genreAliases[key]; ok {
		key = canonical
	}
	return genreAffinities[key]
}
