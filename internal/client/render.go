package client

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/movie-manager/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderMovies renders movies as a table with a title line above it.
func renderMovies(title string, movies []models.Movie) string {
	heading := titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(movies)))
	if len(movies) == 0 {
		return heading + "\n" + helpStyle.Render("  nothing here")
	}

	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		poster := ""
		if m.HasPoster() {
			poster = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			m.ReleaseYear(),
			strconv.FormatFloat(m.VoteAverage, 'f', 1, 64),
			poster,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "YEAR", "RATING", "POSTER").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return heading + "\n" + t.Render()
}

func renderError(err error) string {
	return errorStyle.Render("error: " + err.Error())
}

const helpText = `Commands:
  login [username]     log in with username and password
  weblogin             log in by approving a token in the browser
  logout               end the session
  watchlist            show the watchlist
  favorites            show the favorites
  search <title>       search movies by title
  watch <id>           add or remove a movie from the watchlist
  favorite <id>        add or remove a movie from the favorites
  poster <id> <file>   save the poster of a movie to file
  version              show build information
  help                 show this help
  quit                 leave the program`

func renderHelp() string {
	return helpStyle.Render(helpText)
}
