package lyrics

// lexiconEntry holds the polarity direction and weight for one word.
// Polarity is in [-1, 1]; weight scales how strongly the word counts.
type lexiconEntry struct {
	polarity float64
	weight   float64
}

// polarityLexicon is the static word-polarity table used for the
// compound sentiment score. Built once, read-only afterwards.
var polarityLexicon = map[string]lexiconEntry{
	// Strong positive
	"love":      {0.8, 0.9},
	"adore":     {0.8, 0.8},
	"joy":       {0.8, 0.9},
	"joyful":    {0.8, 0.8},
	"bliss":     {0.8, 0.7},
	"wonderful": {0.8, 0.8},
	"amazing":   {0.8, 0.8},
	"fantastic": {0.8, 0.7},
	"perfect":   {0.8, 0.7},
	"paradise":  {0.7, 0.7},
	"heaven":    {0.7, 0.7},
	"beautiful": {0.7, 0.8},
	"brilliant": {0.7, 0.6},
	"glorious":  {0.7, 0.6},
	"happy":     {0.7, 0.9},
	"happiness": {0.7, 0.8},
	"delight":   {0.7, 0.6},
	"ecstasy":   {0.8, 0.6},
	"euphoria":  {0.8, 0.6},

	// Positive
	"good":      {0.5, 0.7},
	"great":     {0.6, 0.7},
	"nice":      {0.4, 0.6},
	"sweet":     {0.5, 0.7},
	"warm":      {0.4, 0.6},
	"bright":    {0.5, 0.6},
	"shine":     {0.5, 0.6},
	"shining":   {0.5, 0.6},
	"sunshine":  {0.6, 0.7},
	"smile":     {0.6, 0.8},
	"laugh":     {0.6, 0.7},
	"laughter":  {0.6, 0.6},
	"dance":     {0.5, 0.6},
	"dancing":   {0.5, 0.6},
	"sing":      {0.4, 0.5},
	"celebrate": {0.6, 0.6},
	"party":     {0.5, 0.6},
	"fun":       {0.5, 0.7},
	"alive":     {0.5, 0.7},
	"free":      {0.5, 0.6},
	"freedom":   {0.5, 0.6},
	"hope":      {0.5, 0.7},
	"hopeful":   {0.5, 0.6},
	"dream":     {0.4, 0.5},
	"dreams":    {0.4, 0.5},
	"faith":     {0.4, 0.5},
	"trust":     {0.4, 0.6},
	"peace":     {0.5, 0.7},
	"peaceful":  {0.5, 0.6},
	"gentle":    {0.4, 0.5},
	"kiss":      {0.5, 0.6},
	"embrace":   {0.5, 0.5},
	"darling":   {0.5, 0.5},
	"angel":     {0.5, 0.5},
	"victory":   {0.6, 0.6},
	"win":       {0.5, 0.5},
	"strong":    {0.4, 0.5},
	"stronger":  {0.4, 0.5},
	"rise":      {0.4, 0.5},
	"fly":       {0.4, 0.5},
	"golden":    {0.4, 0.5},
	"magic":     {0.5, 0.5},
	"wonder":    {0.4, 0.5},
	"grace":     {0.4, 0.5},
	"blessed":   {0.6, 0.6},
	"thankful":  {0.5, 0.5},
	"home":      {0.3, 0.4},
	"together":  {0.4, 0.5},
	"forever":   {0.3, 0.4},

	// Strong negative
	"hate":       {-0.8, 0.9},
	"hatred":     {-0.8, 0.8},
	"terrible":   {-0.8, 0.8},
	"horrible":   {-0.8, 0.8},
	"awful":      {-0.7, 0.8},
	"worst":      {-0.7, 0.7},
	"nightmare":  {-0.7, 0.7},
	"hell":       {-0.7, 0.7},
	"death":      {-0.7, 0.7},
	"die":        {-0.7, 0.7},
	"dying":      {-0.7, 0.7},
	"dead":       {-0.7, 0.7},
	"kill":       {-0.8, 0.7},
	"destroy":    {-0.7, 0.6},
	"rage":       {-0.7, 0.7},
	"fury":       {-0.7, 0.6},
	"devastated": {-0.8, 0.6},
	"miserable":  {-0.7, 0.7},
	"misery":     {-0.7, 0.7},
	"suffering":  {-0.7, 0.6},
	"agony":      {-0.7, 0.6},
	"torture":    {-0.7, 0.5},
	"poison":     {-0.6, 0.5},

	// Negative
	"sad":       {-0.7, 0.9},
	"sadness":   {-0.7, 0.8},
	"sorrow":    {-0.7, 0.7},
	"bad":       {-0.5, 0.7},
	"wrong":     {-0.4, 0.6},
	"hurt":      {-0.6, 0.8},
	"pain":      {-0.6, 0.8},
	"painful":   {-0.6, 0.7},
	"broken":    {-0.6, 0.8},
	"break":     {-0.4, 0.5},
	"shatter":   {-0.6, 0.5},
	"cry":       {-0.6, 0.8},
	"crying":    {-0.6, 0.7},
	"tears":     {-0.6, 0.8},
	"weep":      {-0.6, 0.5},
	"lonely":    {-0.6, 0.8},
	"alone":     {-0.5, 0.7},
	"loneliness": {-0.6, 0.6},
	"empty":     {-0.5, 0.7},
	"hollow":    {-0.5, 0.5},
	"numb":      {-0.5, 0.6},
	"cold":      {-0.4, 0.6},
	"dark":      {-0.4, 0.6},
	"darkness":  {-0.5, 0.6},
	"shadow":    {-0.3, 0.4},
	"fear":      {-0.6, 0.7},
	"afraid":    {-0.5, 0.6},
	"scared":    {-0.5, 0.6},
	"worry":     {-0.4, 0.5},
	"lost":      {-0.5, 0.7},
	"gone":      {-0.4, 0.6},
	"goodbye":   {-0.4, 0.6},
	"miss":      {-0.4, 0.6},
	"missing":   {-0.4, 0.5},
	"regret":    {-0.5, 0.6},
	"sorry":     {-0.4, 0.6},
	"shame":     {-0.5, 0.5},
	"guilt":     {-0.5, 0.5},
	"blame":     {-0.4, 0.5},
	"lie":       {-0.4, 0.5},
	"lies":      {-0.4, 0.5},
	"cheat":     {-0.5, 0.5},
	"betray":    {-0.6, 0.5},
	"fall":      {-0.3, 0.4},
	"fail":      {-0.5, 0.5},
	"burn":      {-0.4, 0.5},
	"scars":     {-0.4, 0.5},
	"bleed":     {-0.5, 0.5},
	"grave":     {-0.5, 0.4},
	"ghost":     {-0.3, 0.4},
	"angry":     {-0.6, 0.7},
	"anger":     {-0.6, 0.6},
	"mad":       {-0.5, 0.6},
	"fight":     {-0.4, 0.5},
	"war":       {-0.5, 0.5},
	"scream":    {-0.4, 0.5},
	"storm":     {-0.3, 0.4},
}

// intensifiers boost the immediately following polarity or keyword
// word. The boost is a single flat multiplier, matching how listeners
// read "very sad" against plain "sad".
var intensifiers = map[string]bool{
	"very":       true,
	"really":     true,
	"extremely":  true,
	"incredibly": true,
	"absolutely": true,
	"totally":    true,
	"completely": true,
	"utterly":    true,
	"deeply":     true,
	"truly":      true,
	"so":         true,
	"too":        true,
	"quite":      true,
}

// negators flip a polarity word appearing within the negation window
// after them.
var negators = map[string]bool{
	"not":       true,
	"no":        true,
	"never":     true,
	"none":      true,
	"nothing":   true,
	"nobody":    true,
	"nowhere":   true,
	"don't":     true,
	"won't":     true,
	"can't":     true,
	"shouldn't": true,
	"wouldn't":  true,
	"couldn't":  true,
}

const (
	// intensifierBoost multiplies a word preceded by an intensifier.
	intensifierBoost = 1.5

	// negationWindow is how many tokens back a negator still applies.
	negationWindow = 3

	// negationDamp scales a flipped contribution; "not happy" lands
	// softer than "sad".
	negationDamp = 0.5
)
