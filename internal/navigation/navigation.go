package navigation

import (
	"net/url"
	"strconv"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
)

const driveBaseURL = "https://www.google.com/maps/dir/"

// DriveURL builds the external navigation deep link used when in-app
// routing is not enough. No local computation happens: the maps service
// does all the work.
func DriveURL(origin, destination geo.Point) string {
	v := url.Values{}
	v.Set("api", "1")
	v.Set("origin", formatPoint(origin))
	v.Set("destination", formatPoint(destination))
	v.Set("travelmode", "driving")

	return driveBaseURL + "?" + v.Encode()
}

func formatPoint(p geo.Point) string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}
