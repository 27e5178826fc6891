package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frizinak/gotls/simplehttp"
	"github.com/frizinak/gotls/tls"
	"github.com/frizinak/pronouns/common"
	"github.com/frizinak/pronouns/config"
	"github.com/frizinak/pronouns/dict"
	"github.com/frizinak/pronouns/image"
	"github.com/frizinak/pronouns/pronouns"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const suggestions = 5

var (
	imgFG = color.NRGBA{255, 255, 255, 255}
	imgBG = color.NRGBA{21, 21, 21, 255}
)

type App struct {
	domain   string
	cacheDir string
	dict     *dict.Dict
	tpl      *template.Template
	docs     template.HTML
	css      string
	metrics  *metrics
}

func NewApp(d *dict.Dict, domain, cacheDir string) (*App, error) {
	tpl, err := pageTpl()
	if err != nil {
		return nil, err
	}
	docs, err := common.APIDocs(domain)
	if err != nil {
		return nil, err
	}
	css, err := common.CSS()
	if err != nil {
		return nil, err
	}

	d.InitFuzzIndex()
	return &App{
		domain:   domain,
		cacheDir: cacheDir,
		dict:     d,
		tpl:      tpl,
		docs:     docs,
		css:      css,
		metrics:  newMetrics(d.Len()),
	}, nil
}

func (app *App) route(r *http.Request, l *log.Logger) (simplehttp.HandleFunc, int) {
	p := strings.Trim(r.URL.Path, "/")
	r.URL.Path = p

	m := app.metrics
	switch p {
	case ".within/health":
		return m.count("health", app.handleHealth), 0
	case "metrics":
		return app.handleMetrics, 0
	case "api/all":
		return m.count("api_all", app.handleAll), 0
	case "api/docs":
		return m.count("docs", app.handleDocs), 0
	case "pronoun-list":
		return m.count("list", app.handleList), 0
	case "asset/style.css":
		return app.handleCSS, 0
	case "":
		return m.count("home", app.handleHome), 0
	case "they":
		return m.count("guess", app.handleThey), 0
	}

	switch {
	case strings.HasPrefix(p, "api/lookup/"):
		return m.count("api_lookup", app.handleAPILookup), 0
	case strings.HasPrefix(p, "api/exact/"):
		return m.count("api_exact", app.handleAPIExact), 0
	case strings.HasPrefix(p, "i/") && strings.HasSuffix(p, ".png"):
		return m.count("image", app.handleImg), 0
	}

	return m.count("guess", app.handleGuess), 0
}

func (app *App) cache(path string, w io.Writer, generate func(w io.Writer) (int64, error)) (int64, error) {
	f, err := os.Open(path)
	if err == nil {
		n, err := io.Copy(w, f)
		f.Close()
		return n, err
	}

	if os.IsNotExist(err) {
		tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())
		f, err := os.Create(tmp)
		if err != nil {
			return 0, err
		}
		rw := io.MultiWriter(f, w)
		n, err := generate(rw)
		f.Close()
		if err != nil {
			os.Remove(tmp)
			return n, err
		}
		return n, os.Rename(tmp, path)
	}

	return 0, err
}

func (app *App) img(set *pronouns.PronounSet, w io.Writer) (int64, error) {
	if set == nil {
		return 0, errors.New("nil pronoun set")
	}

	k := set.Key()
	fp := filepath.Join(app.cacheDir, strings.Join(k[:], "-")+".png")
	return app.cache(fp, w, func(w io.Writer) (int64, error) {
		img, err := image.Image(200, set.Title(), set.String(), imgFG, imgBG)
		if err != nil {
			return 0, err
		}

		return -1, png.Encode(w, img)
	})
}

func (app *App) render(w http.ResponseWriter, status int, name string, page Page) (int, error) {
	page.Domain = app.domain
	buf := bytes.NewBuffer(nil)
	if err := app.tpl.ExecuteTemplate(buf, name, page); err != nil {
		return 0, err
	}

	w.Header().Set("content-type", "text/html; charset=utf-8")
	if status != 0 {
		w.WriteHeader(status)
	}
	return 0, common.Minify("text/html", w, buf)
}

type apiError struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) (int, error) {
	buf := bytes.NewBuffer(nil)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return 0, err
	}

	w.Header().Set("content-type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	return 0, common.Minify("application/json", w, buf)
}

func notFoundJSON(w http.ResponseWriter, query string) (int, error) {
	return writeJSON(
		w,
		http.StatusNotFound,
		apiError{Message: fmt.Sprintf("can't find %s in my database", query)},
	)
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	w.Header().Set("content-type", "text/plain")
	_, err := io.WriteString(w, "OK")
	return 0, err
}

func (app *App) handleMetrics(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	app.metrics.handler().ServeHTTP(w, r)
	return 0, nil
}

func (app *App) handleCSS(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	h := w.Header()
	h.Set("content-type", "text/css")
	h.Set("cache-control", "max-age=86400")
	_, err := io.WriteString(w, app.css)
	return 0, err
}

func (app *App) handleAll(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	return writeJSON(w, 0, app.dict.Sets())
}

func (app *App) handleAPILookup(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	q := strings.TrimPrefix(r.URL.Path, "api/lookup/")
	sets := app.dict.Lookup(q)
	if len(sets) == 0 {
		return notFoundJSON(w, q)
	}

	return writeJSON(w, 0, sets)
}

func (app *App) handleAPIExact(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	q := strings.TrimPrefix(r.URL.Path, "api/exact/")
	set, ok := pronouns.FromParts(strings.Split(q, "/"))
	if !ok {
		return notFoundJSON(w, q)
	}

	set.Singular = true
	return writeJSON(w, 0, set)
}

func (app *App) handleDocs(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	return app.render(w, 0, "docs", Page{Title: "API Documentation", Docs: app.docs})
}

func (app *App) handleList(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	return app.render(w, 0, "list", Page{Title: "All pronouns", Sets: app.dict.Sets()})
}

func (app *App) handleHome(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	return app.render(w, 0, "home", Page{})
}

func (app *App) handleThey(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	return app.guess(w, "they/.../themselves")
}

func (app *App) handleGuess(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	return app.guess(w, r.URL.Path)
}

func (app *App) guess(w http.ResponseWriter, query string) (int, error) {
	sets := app.dict.Lookup(query)
	switch {
	case len(sets) > 1:
		return app.render(w, http.StatusBadRequest, "ambiguous", Page{
			Title: "Ambiguous pronouns detected",
			Query: query,
			Sets:  sets,
		})
	case len(sets) == 1:
		return app.render(w, 0, "pronoun", Page{Title: sets[0].Title(), Set: sets[0]})
	}

	if set, ok := pronouns.FromParts(strings.Split(query, "/")); ok {
		app.metrics.adhoc.Inc()
		return app.render(w, 0, "pronoun", Page{Title: set.Title(), Set: set})
	}

	return app.render(w, http.StatusNotFound, "notfound", Page{
		Title: "Can't find that pronoun",
		Query: query,
		Sets:  app.dict.Suggest(query, suggestions),
	})
}

func (app *App) handleImg(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	q := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "i/"), ".png")
	parts := strings.Split(q, "/")
	set, ok := pronouns.FromParts(parts)
	if !ok {
		return http.StatusNotFound, nil
	}
	if known, ok := app.dict.Exact(set.Key()); ok {
		set = known
	}

	h := w.Header()
	h.Set("content-type", "image/png")
	h.Set("cache-control", "max-age=86400")
	_, err := app.img(set, w)

	return 0, err
}

func (app *App) errorPages(s *tls.Server) error {
	buf := bytes.NewBuffer(nil)
	for i := 300; i <= 500; i++ {
		buf.Reset()
		errstr := http.StatusText(i)
		if errstr == "" {
			errstr = "Something went wrong"
		}
		if err := app.tpl.ExecuteTemplate(buf, "error", Page{Title: fmt.Sprintf("%d - %s", i, errstr)}); err != nil {
			return err
		}
		b := make([]byte, buf.Len())
		copy(b, buf.Bytes())
		s.SetHTTPErrorHandler(i, simplehttp.NewHTTPError("text/html", b))
	}
	return nil
}

// loadDict picks the database to serve: db if given, the configured
// database if it exists, the builtin one otherwise.
func loadDict(db string, conf config.Config) (*dict.Dict, error) {
	if db != "" {
		return common.LoadDict(db)
	}
	if conf.DB != "" {
		_, err := os.Stat(conf.DB)
		if err == nil {
			return common.LoadDict(conf.DB)
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return common.GetDict()
}

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	var configFile string
	var addr string
	var cacheDir string
	var db string
	flag.StringVar(&configFile, "config", "", "config file, defaults to "+config.DefaultFile+" if it exists")
	flag.StringVar(&addr, "l", "", "address to bind to, overrides the config")
	flag.StringVar(&cacheDir, "c", "", "cache dir, defaults to <XDG default>/pronouns")
	flag.StringVar(&db, "db", "", "GOB database or tab separated file, defaults to the configured db if it exists, else the builtin database")
	flag.Parse()

	conf, err := config.Load(configFile)
	exit(err)
	if addr != "" {
		conf.Addr = addr
	}
	if cacheDir != "" {
		conf.Cache = cacheDir
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		exit(err)
	}
	if d := os.Getenv("PRONOUN_DOMAIN"); d != "" {
		conf.Domain = d
	}

	if conf.Cache == "" {
		_cacheDir, err := os.UserCacheDir()
		if err != nil {
			exit(fmt.Errorf("please specify a cache dir (-c) as we could not find a default directory: %w", err))
		}
		conf.Cache = filepath.Join(_cacheDir, "pronouns")
	}
	imgCacheDir := filepath.Join(conf.Cache, "img")
	exit(os.MkdirAll(imgCacheDir, 0o700))

	logger, err := zap.NewProduction()
	exit(err)
	defer logger.Sync()

	d, err := loadDict(db, conf)
	exit(err)

	app, err := NewApp(d, conf.Domain, imgCacheDir)
	exit(err)

	s := tls.New(app.route, zap.NewStdLog(logger))
	exit(app.errorPages(s))

	logger.Info(
		"listening",
		zap.String("addr", conf.Addr),
		zap.String("domain", conf.Domain),
		zap.Int("sets", d.Len()),
	)
	exit(s.Start(conf.Addr, false))
}
