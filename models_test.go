package okra

import (
	"time"
)

// Test models shared across the package tests.

type Weapon struct {
	NodeMarker
	ID       SurrealID[Weapon] `db:"id"`
	Name     string            `db:"name"`
	Strength int               `db:"strength"`
	Created  time.Time         `db:"created"`
}

func (Weapon) TableName() string { return "weapon" }

type Book struct {
	NodeMarker
	ID    SurrealID[Book] `db:"id"`
	Title string          `db:"title"`
}

func (Book) TableName() string { return "book" }

type Student struct {
	NodeMarker
	ID            SurrealID[Student] `db:"id"`
	FirstName     string             `db:"first_name"`
	Age           int                `db:"age"`
	BestFriend    SurrealID[Student] `db:"best_friend" link_self:"student"`
	FavouriteBook SurrealID[Book]    `db:"favourite_book" link_one:"book"`
	Books         []SurrealID[Book]  `db:"books" link_many:"book"`
	WrittenBooks  []SurrealID[Book]  `db:"written_books" relate:"->writes->book"`
}

func (Student) TableName() string { return "student" }

type Writes struct {
	EdgeMarker
	ID          SurrealID[Writes]  `db:"id"`
	In          SurrealID[Student] `db:"in" link_one:"student"`
	Out         SurrealID[Book]    `db:"out" link_one:"book"`
	TimeWritten time.Duration      `db:"time_written"`
}

func (Writes) TableName() string { return "writes" }

type Account struct {
	NodeMarker
	ID      SurrealID[Account] `db:"id"`
	Balance float64            `db:"balance"`
}

func (Account) TableName() string { return "account" }
