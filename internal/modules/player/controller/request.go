package controller

import (
	"league/internal/modules/player"
	"league/pkg/lib/form"
)

func newCreatePlayerRequest(v form.Values) (player.CreatePlayerRequest, error) {
	var req player.CreatePlayerRequest

	name, err := v.String("name")
	if err != nil {
		return req, err
	}
	jersey, err := v.String("jerseyNumber")
	if err != nil {
		return req, err
	}
	position, err := v.String("position")
	if err != nil {
		return req, err
	}
	birthDate, err := v.Date("birthDate")
	if err != nil {
		return req, err
	}
	nationality, err := v.String("nationality")
	if err != nil {
		return req, err
	}
	description, err := v.String("description")
	if err != nil {
		return req, err
	}
	teamID, err := v.Uint("teamId")
	if err != nil {
		return req, err
	}
	height, err := v.Float("height")
	if err != nil {
		return req, err
	}
	weight, err := v.Float("weight")
	if err != nil {
		return req, err
	}
	secondary1, err := v.String("secondaryPosition1")
	if err != nil {
		return req, err
	}
	secondary2, err := v.String("secondaryPosition2")
	if err != nil {
		return req, err
	}
	rarity, err := v.String("rarity")
	if err != nil {
		return req, err
	}

	req.Name = name.Value
	req.JerseyNumber = jersey.Value
	req.Position = position.Value
	req.BirthDate = birthDate.Ptr()
	req.Nationality = nationality.Ptr()
	req.Description = description.Ptr()
	req.TeamID = teamID.Ptr()
	req.Height = height.Ptr()
	req.Weight = weight.Ptr()
	req.SecondaryPosition1 = secondary1.Ptr()
	req.SecondaryPosition2 = secondary2.Ptr()
	req.Rarity = rarity.Ptr()
	return req, nil
}

func newUpdatePlayerRequest(v form.Values) (player.UpdatePlayerRequest, error) {
	var req player.UpdatePlayerRequest
	var err error

	if req.Name, err = v.String("name"); err != nil {
		return req, err
	}
	if req.JerseyNumber, err = v.String("jerseyNumber"); err != nil {
		return req, err
	}
	if req.Position, err = v.String("position"); err != nil {
		return req, err
	}
	if req.BirthDate, err = v.Date("birthDate"); err != nil {
		return req, err
	}
	if req.Nationality, err = v.String("nationality"); err != nil {
		return req, err
	}
	if req.Description, err = v.String("description"); err != nil {
		return req, err
	}
	if req.TeamID, err = v.Uint("teamId"); err != nil {
		return req, err
	}
	if req.Height, err = v.Float("height"); err != nil {
		return req, err
	}
	if req.Weight, err = v.Float("weight"); err != nil {
		return req, err
	}
	if req.SecondaryPosition1, err = v.String("secondaryPosition1"); err != nil {
		return req, err
	}
	if req.SecondaryPosition2, err = v.String("secondaryPosition2"); err != nil {
		return req, err
	}
	if req.Rarity, err = v.String("rarity"); err != nil {
		return req, err
	}
	return req, nil
}
