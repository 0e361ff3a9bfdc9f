package lyrics

import "github.com/justestif/go-playlist-mood-analyzer/internal/mood"

// moodKeywords maps curated lyric vocabulary onto mood categories.
// Each hit contributes a fixed base weight, adjusted by intensifiers
// and negation at scoring time. Static, built once.
var moodKeywords = map[string]mood.Category{
	// happy
	"happy":      mood.Happy,
	"happiness":  mood.Happy,
	"joy":        mood.Happy,
	"joyful":     mood.Happy,
	"smile":      mood.Happy,
	"smiling":    mood.Happy,
	"laugh":      mood.Happy,
	"laughing":   mood.Happy,
	"laughter":   mood.Happy,
	"sunshine":   mood.Happy,
	"sunny":      mood.Happy,
	"bright":     mood.Happy,
	"shine":      mood.Happy,
	"shining":    mood.Happy,
	"glow":       mood.Happy,
	"golden":     mood.Happy,
	"wonderful":  mood.Happy,
	"beautiful":  mood.Happy,
	"amazing":    mood.Happy,
	"fantastic":  mood.Happy,
	"great":      mood.Happy,
	"good":       mood.Happy,
	"blessed":    mood.Happy,
	"lucky":      mood.Happy,
	"thankful":   mood.Happy,
	"grateful":   mood.Happy,
	"celebrate":  mood.Happy,
	"celebration": mood.Happy,
	"paradise":   mood.Happy,
	"heaven":     mood.Happy,
	"delight":    mood.Happy,
	"cheer":      mood.Happy,
	"cheerful":   mood.Happy,
	"glad":       mood.Happy,
	"bliss":      mood.Happy,
	"wonder":     mood.Happy,
	"magic":      mood.Happy,

	// sad
	"sad":        mood.Sad,
	"sadness":    mood.Sad,
	"cry":        mood.Sad,
	"crying":     mood.Sad,
	"cried":      mood.Sad,
	"tears":      mood.Sad,
	"teardrops":  mood.Sad,
	"weep":       mood.Sad,
	"weeping":    mood.Sad,
	"sorrow":     mood.Sad,
	"grief":      mood.Sad,
	"mourn":      mood.Sad,
	"mourning":   mood.Sad,
	"lonely":     mood.Sad,
	"loneliness": mood.Sad,
	"alone":      mood.Sad,
	"miss":       mood.Sad,
	"missing":    mood.Sad,
	"goodbye":    mood.Sad,
	"farewell":   mood.Sad,
	"hurt":       mood.Sad,
	"hurting":    mood.Sad,
	"pain":       mood.Sad,
	"painful":    mood.Sad,
	"broken":     mood.Sad,
	"heartbreak": mood.Sad,
	"heartbroken": mood.Sad,
	"shattered":  mood.Sad,
	"lost":       mood.Sad,
	"losing":     mood.Sad,
	"empty":      mood.Sad,
	"hollow":     mood.Sad,
	"sorry":      mood.Sad,
	"regret":     mood.Sad,
	"misery":     mood.Sad,
	"miserable":  mood.Sad,
	"suffer":     mood.Sad,

	// energetic
	"energy":     mood.Energetic,
	"run":        mood.Energetic,
	"running":    mood.Energetic,
	"jump":       mood.Energetic,
	"jumping":    mood.Energetic,
	"fire":       mood.Energetic,
	"burning":    mood.Energetic,
	"electric":   mood.Energetic,
	"lightning":  mood.Energetic,
	"thunder":    mood.Energetic,
	"loud":       mood.Energetic,
	"louder":     mood.Energetic,
	"wild":       mood.Energetic,
	"crazy":      mood.Energetic,
	"insane":     mood.Energetic,
	"adrenaline": mood.Energetic,
	"rush":       mood.Energetic,
	"fast":       mood.Energetic,
	"faster":     mood.Energetic,
	"race":       mood.Energetic,
	"racing":     mood.Energetic,
	"pump":       mood.Energetic,
	"pumping":    mood.Energetic,
	"power":      mood.Energetic,
	"powerful":   mood.Energetic,
	"unstoppable": mood.Energetic,
	"explode":    mood.Energetic,
	"explosion":  mood.Energetic,
	"ignite":     mood.Energetic,
	"alive":      mood.Energetic,
	"awake":      mood.Energetic,
	"charge":     mood.Energetic,
	"roar":       mood.Energetic,
	"stomp":      mood.Energetic,
	"shake":      mood.Energetic,
	"shaking":    mood.Energetic,

	// calm
	"calm":       mood.Calm,
	"quiet":      mood.Calm,
	"still":      mood.Calm,
	"stillness":  mood.Calm,
	"peace":      mood.Calm,
	"peaceful":   mood.Calm,
	"serene":     mood.Calm,
	"serenity":   mood.Calm,
	"gentle":     mood.Calm,
	"gently":     mood.Calm,
	"soft":       mood.Calm,
	"softly":     mood.Calm,
	"slow":       mood.Calm,
	"slowly":     mood.Calm,
	"breathe":    mood.Calm,
	"breathing":  mood.Calm,
	"rest":       mood.Calm,
	"resting":    mood.Calm,
	"sleep":      mood.Calm,
	"sleeping":   mood.Calm,
	"lullaby":    mood.Calm,
	"drift":      mood.Calm,
	"drifting":   mood.Calm,
	"float":      mood.Calm,
	"floating":   mood.Calm,
	"ocean":      mood.Calm,
	"river":      mood.Calm,
	"breeze":     mood.Calm,
	"meadow":     mood.Calm,
	"morning":    mood.Calm,
	"sunrise":    mood.Calm,
	"tranquil":   mood.Calm,
	"ease":       mood.Calm,
	"easy":       mood.Calm,
	"mellow":     mood.Calm,
	"hush":       mood.Calm,

	// angry
	"angry":      mood.Angry,
	"anger":      mood.Angry,
	"rage":       mood.Angry,
	"raging":     mood.Angry,
	"fury":       mood.Angry,
	"furious":    mood.Angry,
	"hate":       mood.Angry,
	"hatred":     mood.Angry,
	"mad":        mood.Angry,
	"fight":      mood.Angry,
	"fighting":   mood.Angry,
	"war":        mood.Angry,
	"battle":     mood.Angry,
	"enemy":      mood.Angry,
	"revenge":    mood.Angry,
	"vengeance":  mood.Angry,
	"scream":     mood.Angry,
	"screaming":  mood.Angry,
	"shout":      mood.Angry,
	"shouting":   mood.Angry,
	"rebel":      mood.Angry,
	"riot":       mood.Angry,
	"destroy":    mood.Angry,
	"destruction": mood.Angry,
	"smash":      mood.Angry,
	"crush":      mood.Angry,
	"kill":       mood.Angry,
	"violence":   mood.Angry,
	"violent":    mood.Angry,
	"blood":      mood.Angry,
	"poison":     mood.Angry,
	"betrayed":   mood.Angry,
	"liar":       mood.Angry,
	"curse":      mood.Angry,
	"damn":       mood.Angry,
	"burn":       mood.Angry,

	// romantic
	"love":       mood.Romantic,
	"lover":      mood.Romantic,
	"loving":     mood.Romantic,
	"romance":    mood.Romantic,
	"romantic":   mood.Romantic,
	"kiss":       mood.Romantic,
	"kissing":    mood.Romantic,
	"embrace":    mood.Romantic,
	"heart":      mood.Romantic,
	"hearts":     mood.Romantic,
	"darling":    mood.Romantic,
	"sweetheart": mood.Romantic,
	"baby":       mood.Romantic,
	"honey":      mood.Romantic,
	"desire":     mood.Romantic,
	"passion":    mood.Romantic,
	"tender":     mood.Romantic,
	"tenderly":   mood.Romantic,
	"devotion":   mood.Romantic,
	"adore":      mood.Romantic,
	"cherish":    mood.Romantic,
	"beloved":    mood.Romantic,
	"valentine":  mood.Romantic,
	"roses":      mood.Romantic,
	"candlelight": mood.Romantic,
	"moonlight":  mood.Romantic,
	"starlight":  mood.Romantic,
	"touch":      mood.Romantic,
	"hold":       mood.Romantic,
	"holding":    mood.Romantic,
	"closer":     mood.Romantic,
	"together":   mood.Romantic,
	"forever":    mood.Romantic,
	"soulmate":   mood.Romantic,
	"angel":      mood.Romantic,
	"beauty":     mood.Romantic,

	// melancholic
	"melancholy": mood.Melancholic,
	"nostalgia":  mood.Melancholic,
	"nostalgic":  mood.Melancholic,
	"memories":   mood.Melancholic,
	"memory":     mood.Melancholic,
	"remember":   mood.Melancholic,
	"yesterday":  mood.Melancholic,
	"faded":      mood.Melancholic,
	"fading":     mood.Melancholic,
	"distant":    mood.Melancholic,
	"echo":       mood.Melancholic,
	"echoes":     mood.Melancholic,
	"ghost":      mood.Melancholic,
	"shadow":     mood.Melancholic,
	"shadows":    mood.Melancholic,
	"autumn":     mood.Melancholic,
	"winter":     mood.Melancholic,
	"rain":       mood.Melancholic,
	"raining":    mood.Melancholic,
	"grey":       mood.Melancholic,
	"gray":       mood.Melancholic,
	"dusk":       mood.Melancholic,
	"twilight":   mood.Melancholic,
	"wither":     mood.Melancholic,
	"withered":   mood.Melancholic,
	"longing":    mood.Melancholic,
	"yearning":   mood.Melancholic,
	"wistful":    mood.Melancholic,
	"bittersweet": mood.Melancholic,
	"silence":    mood.Melancholic,
	"silent":     mood.Melancholic,
	"midnight":   mood.Melancholic,
	"cold":       mood.Melancholic,
	"dark":       mood.Melancholic,
	"darkness":   mood.Melancholic,
	"gone":       mood.Melancholic,

	// upbeat
	"dance":     mood.Upbeat,
	"dancing":   mood.Upbeat,
	"party":     mood.Upbeat,
	"partying":  mood.Upbeat,
	"groove":    mood.Upbeat,
	"groovy":    mood.Upbeat,
	"funky":     mood.Upbeat,
	"bounce":    mood.Upbeat,
	"bouncing":  mood.Upbeat,
	"swing":     mood.Upbeat,
	"rhythm":    mood.Upbeat,
	"beat":      mood.Upbeat,
	"move":      mood.Upbeat,
	"moving":    mood.Upbeat,
	"shimmy":    mood.Upbeat,
	"boogie":    mood.Upbeat,
	"disco":     mood.Upbeat,
	"tonight":   mood.Upbeat,
	"weekend":   mood.Upbeat,
	"friday":    mood.Upbeat,
	"saturday":  mood.Upbeat,
	"summer":    mood.Upbeat,
	"fun":       mood.Upbeat,
	"play":      mood.Upbeat,
	"playing":   mood.Upbeat,
	"sing":      mood.Upbeat,
	"singing":   mood.Upbeat,
	"clap":      mood.Upbeat,
	"cheers":    mood.Upbeat,
	"toast":     mood.Upbeat,
	"high":      mood.Upbeat,
	"higher":    mood.Upbeat,
	"up":        mood.Upbeat,
	"fly":       mood.Upbeat,
	"flying":    mood.Upbeat,
	"freedom":   mood.Upbeat,
	"free":      mood.Upbeat,
}

// moodOpposites pairs categories for negation flips: "not happy" reads
// as sad, "never calm" as energetic. Categories without a listed
// opposite simply lose the negated hit.
var moodOpposites = map[mood.Category]mood.Category{
	mood.Happy:     mood.Sad,
	mood.Sad:       mood.Happy,
	mood.Energetic: mood.Calm,
	mood.Calm:      mood.Energetic,
}

// keywordWeight is the base contribution of a single keyword hit.
const keywordWeight = 1.0
