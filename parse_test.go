package okra

import (
	"testing"
	"time"
)

func TestValidate_RawBuildsParse(t *testing.T) {
	age := NewField("age")
	statements := []Queryable{
		Select().From("student").Where(age.Between(18, 65)).Limit(10),
		Create[Weapon]().Content(Weapon{Name: "Laser", Created: time.Now()}),
		Update[Weapon](NewID[Weapon](1)).Set(NewField("strength").IncrementBy(5)),
		Delete[Weapon](NewID[Weapon](1)),
		DefineTable("user").Schemafull(),
		Chain(Let("x", 1), Return(NewParam("x"))).AsBlock(),
		Chain(Update[Account](NewID[Account]("one")).Set(NewField("balance").IncrementBy(300))).AsTransaction(),
	}
	for _, stmt := range statements {
		if err := Validate(stmt); err != nil {
			t.Errorf("%s: %v", ToRaw(stmt), err)
		}
	}
}

func TestValidate_SurfacesBuilderErrors(t *testing.T) {
	stmt := Select().From("student").Where(NewField("age").Add(Num("oops")).GreaterThan(1))
	if err := Validate(stmt); err == nil {
		t.Error("builder errors must surface before parsing")
	}
}
