// Package content serves the static hadith and news panels.
package content

import "math/rand/v2"

// Hadith is a saying shown in Arabic with its Persian translation.
type Hadith struct {
	Arabic  string
	Persian string
}

// NewsItem is a headline with a relative publication time.
type NewsItem struct {
	Title string
	Time  string
}

var hadiths = []Hadith{
	{Arabic: "مَن صَمَتَ نَجا", Persian: "هر که سکوت کرد، نجات یافت."},
	{Arabic: "خیرکم من تعلم القرآن وعلمه", Persian: "بهترین شما کسی است که قرآن بیاموزد و یاد دهد."},
}

// news is placeholder data; a real feed needs a server-side API key.
var news = []NewsItem{
	{Title: "آغاز کار پروژه سرک کابل-قندهار", Time: "۱ ساعت پیش"},
	{Title: "کاهش بهای مواد نفتی در بازار", Time: "۳ ساعت پیش"},
	{Title: "مسابقات کریکت: افغانستان برنده شد", Time: "۵ ساعت پیش"},
}

// RandomHadith picks a hadith using r, or the global source when r is nil.
func RandomHadith(r *rand.Rand) Hadith {
	if r == nil {
		return hadiths[rand.IntN(len(hadiths))]
	}
	return hadiths[r.IntN(len(hadiths))]
}

// News returns the current headlines, newest first.
func News() []NewsItem {
	return append([]NewsItem(nil), news...)
}
