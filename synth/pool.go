package synth

import (
	"github.com/brianvoe/gofakeit/v7"

	"stay_loader/source"
)

// First names by gender. gofakeit's first-name data is not split by
// gender, so only last names come from it.
var (
	femaleFirstNames = []string{
		"Alice", "Amanda", "Angela", "Ashley", "Barbara", "Brenda", "Carol", "Catherine",
		"Christina", "Deborah", "Diana", "Donna", "Elizabeth", "Emily", "Emma", "Grace",
		"Hannah", "Heather", "Helen", "Jennifer", "Jessica", "Julia", "Karen", "Katherine",
		"Kelly", "Laura", "Linda", "Lisa", "Margaret", "Maria", "Megan", "Melissa",
		"Michelle", "Nancy", "Natalie", "Olivia", "Patricia", "Rachel", "Rebecca", "Samantha",
		"Sandra", "Sarah", "Sharon", "Sophia", "Stephanie", "Susan", "Teresa", "Victoria",
	}
	maleFirstNames = []string{
		"Aaron", "Adam", "Andrew", "Anthony", "Benjamin", "Brian", "Charles", "Christopher",
		"Daniel", "David", "Dennis", "Donald", "Edward", "Eric", "Frank", "Gary",
		"George", "Gregory", "Henry", "Jacob", "James", "Jason", "Jeffrey", "John",
		"Jonathan", "Joseph", "Joshua", "Kenneth", "Kevin", "Mark", "Matthew", "Michael",
		"Nathan", "Nicholas", "Patrick", "Paul", "Peter", "Raymond", "Richard", "Robert",
		"Ryan", "Samuel", "Scott", "Stephen", "Steven", "Thomas", "Timothy", "William",
	}
)

// GenerateNamePool returns n synthetic name pool entries. Each first name
// is drawn from the list for the entry's gender. The same seed always
// yields the same pool.
func GenerateNamePool(seed uint64, n int) []source.NameEntry {
	f := gofakeit.New(seed)
	pool := make([]source.NameEntry, 0, n)
	for range n {
		e := source.NameEntry{Gender: "Male"}
		if f.Gender() == "female" {
			e.Gender = "Female"
			e.First = f.RandomString(femaleFirstNames)
		} else {
			e.First = f.RandomString(maleFirstNames)
		}
		e.Last = f.LastName()
		pool = append(pool, e)
	}
	return pool
}
