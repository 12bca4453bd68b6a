package response

import (
	"appointment-finder/internal/domain/location"
)

type PostalCodeLocationsResponse struct {
	PostalCode  int      `json:"postal_code"`
	LocationIDs []string `json:"location_ids"`
}

func FromLocationIDs(code location.PostalCode, ids []location.LocationID) *PostalCodeLocationsResponse {
	res := &PostalCodeLocationsResponse{PostalCode: int(code), LocationIDs: make([]string, len(ids))}
	for i, id := range ids {
		res.LocationIDs[i] = id.String()
	}
	return res
}

type LocationPostalCodesResponse struct {
	LocationID  string `json:"location_id"`
	PostalCodes []int  `json:"postal_codes"`
}

func FromPostalCodes(id location.LocationID, codes []location.PostalCode) *LocationPostalCodesResponse {
	res := &LocationPostalCodesResponse{LocationID: id.String(), PostalCodes: make([]int, len(codes))}
	for i, code := range codes {
		res.PostalCodes[i] = int(code)
	}
	return res
}
