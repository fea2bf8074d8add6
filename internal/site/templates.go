package site

// pageTemplate is the Go html/template shell shared by the index and the
// blog-post pages.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="top-nav">
    <a class="nav-brand" href="{{.BasePath}}index.html">{{.SiteName}}</a>
    <nav class="nav-links">
      <a href="{{.BasePath}}index.html#about">About</a>
      <a href="{{.BasePath}}index.html#education">Education</a>
      <a href="{{.BasePath}}index.html#experience">Experience</a>
      <a href="{{.BasePath}}index.html#projects">Projects</a>
      <a href="{{.BasePath}}index.html#publications">Publications</a>
      <a href="{{.BasePath}}index.html#blog">Blog</a>
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">◐</button>
  </header>
  <main class="content">
{{.Content}}
  </main>
  <button class="back-to-top" id="back-to-top" aria-label="Back to top">↑</button>
  <div class="lightbox" id="lightbox" hidden>
    <button class="lightbox-close" id="lightbox-close" aria-label="Close">×</button>
    <button class="lightbox-prev" id="lightbox-prev" aria-label="Previous">‹</button>
    <img class="lightbox-image" id="lightbox-image" alt="">
    <button class="lightbox-next" id="lightbox-next" aria-label="Next">›</button>
  </div>
  <script>window.__folio = {basePath: "{{.BasePath}}"};</script>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet emitted next to the generated pages. Only
// the wiring the widgets need is styled; visual polish is left to the
// site owner.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #59636e;
  --accent: #0969da;
  --card-bg: #f6f8fa;
  --mark-bg: #fff8c5;
}
[data-theme="dark"] {
  --bg: #0d1117;
  --fg: #e6edf3;
  --muted: #9198a1;
  --accent: #4493f8;
  --card-bg: #161b22;
  --mark-bg: #5a4c00;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}
a { color: var(--accent); }
.top-nav {
  display: flex;
  align-items: center;
  gap: 1rem;
  padding: 0.75rem 1.5rem;
  border-bottom: 1px solid var(--card-bg);
  position: sticky;
  top: 0;
  background: var(--bg);
}
.nav-brand { font-weight: 700; text-decoration: none; color: var(--fg); }
.nav-links { display: flex; gap: 1rem; flex-wrap: wrap; }
.nav-links a { text-decoration: none; color: var(--muted); }
.theme-toggle, .back-to-top, .filter-button, .timeline-header {
  cursor: pointer;
  border: 1px solid var(--muted);
  background: var(--card-bg);
  color: var(--fg);
  border-radius: 6px;
  padding: 0.3rem 0.7rem;
}
.theme-toggle { margin-left: auto; }
.content { max-width: 860px; margin: 0 auto; padding: 1.5rem; }
.card {
  background: var(--card-bg);
  border-radius: 8px;
  padding: 1rem;
  margin: 0.75rem 0;
}
.card.hidden-card { display: none; }
.card.filtered-in { animation: fade-slide-in 0.3s ease-out; }
@keyframes fade-slide-in {
  from { opacity: 0; transform: translateY(8px); }
  to { opacity: 1; transform: none; }
}
.timeline-entry .timeline-body { display: none; }
.timeline-entry[data-expanded="true"] .timeline-body { display: block; }
.timeline-header { display: block; width: 100%; text-align: left; }
.filter-button.active { border-color: var(--accent); color: var(--accent); }
mark.search-highlight { background: var(--mark-bg); color: inherit; }
.search-no-results { color: var(--muted); font-style: italic; }
.blog-grid, .project-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 1rem;
}
.blog-image, .project-image { max-width: 100%; border-radius: 6px; }
.back-to-top { position: fixed; right: 1rem; bottom: 1rem; display: none; }
.back-to-top.visible { display: block; }
.lightbox {
  position: fixed;
  inset: 0;
  background: rgba(0, 0, 0, 0.85);
  display: flex;
  align-items: center;
  justify-content: center;
  gap: 1rem;
}
.lightbox-image { max-width: 85vw; max-height: 85vh; }
`

// jsContent wires the generated pages: theme toggle, accordion, filters,
// blog search against /api/search with a local-index fallback, lightbox
// and back-to-top.
const jsContent = `(function () {
  "use strict";

  var basePath = (window.__folio && window.__folio.basePath) || "";
  var THEME_KEY = "folio-theme";
  var DEBOUNCE_MS = 300;

  // Theme: read the stored value before any toggle.
  var stored = null;
  try { stored = localStorage.getItem(THEME_KEY); } catch (e) {}
  if (stored === "light" || stored === "dark") {
    document.documentElement.setAttribute("data-theme", stored);
  }
  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function () {
      var next = document.documentElement.getAttribute("data-theme") === "dark" ? "light" : "dark";
      document.documentElement.setAttribute("data-theme", next);
      try { localStorage.setItem(THEME_KEY, next); } catch (e) {}
      fetch(basePath + "api/theme", {
        method: "PUT",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ theme: next })
      }).catch(function () {});
    });
  }

  // Accordion: at most one expanded entry per timeline.
  document.querySelectorAll(".timeline-entries").forEach(function (timeline) {
    timeline.addEventListener("click", function (ev) {
      var header = ev.target.closest(".timeline-header");
      if (!header) return;
      var entry = header.closest(".timeline-entry");
      var wasExpanded = entry.getAttribute("data-expanded") === "true";
      timeline.querySelectorAll(".timeline-entry").forEach(function (e) {
        e.setAttribute("data-expanded", "false");
      });
      entry.setAttribute("data-expanded", wasExpanded ? "false" : "true");
    });
  });

  // Publication year filter.
  var filterBar = document.querySelector(".publication-filters");
  if (filterBar) {
    filterBar.addEventListener("click", function (ev) {
      var btn = ev.target.closest(".filter-button");
      if (!btn) return;
      filterBar.querySelectorAll(".filter-button").forEach(function (b) {
        b.classList.remove("active");
      });
      btn.classList.add("active");
      var filter = btn.getAttribute("data-filter");
      document.querySelectorAll(".publication-item").forEach(function (item) {
        var show = filter === "all" || item.getAttribute("data-year") === filter;
        item.classList.toggle("hidden-card", !show);
        item.classList.toggle("filtered-in", show);
      });
    });
  }

  // Blog search.
  var input = document.getElementById("blog-search-input");
  var submit = document.getElementById("blog-search-submit");
  var grid = document.getElementById("blog-grid");
  var timer = null;
  var localIndex = null;

  function applyLocal(query) {
    var q = query.trim().toLowerCase();
    var visible = 0;
    grid.querySelectorAll(".blog-card").forEach(function (card) {
      var text = card.textContent.toLowerCase();
      var show = q === "" || text.indexOf(q) !== -1;
      card.classList.toggle("hidden-card", !show);
      if (show) visible++;
    });
    showNoResults(visible === 0 && q !== "" ? 'No results for "' + q + '"' : "");
  }

  function showNoResults(message) {
    var node = grid.querySelector(".search-no-results");
    if (!message) {
      if (node) node.remove();
      return;
    }
    if (!node) {
      node = document.createElement("p");
      node.className = "search-no-results";
      grid.appendChild(node);
    }
    node.textContent = message;
  }

  function runSearch(query) {
    fetch(basePath + "api/search", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ query: query })
    }).then(function (resp) {
      if (!resp.ok) throw new Error("search unavailable");
      return resp.json();
    }).then(function (data) {
      var byPath = {};
      (data.results || []).forEach(function (r) { byPath[r.path] = r; });
      grid.querySelectorAll(".blog-card").forEach(function (card) {
        var hit = byPath[card.getAttribute("data-path")];
        card.classList.toggle("hidden-card", !hit);
        if (hit) {
          card.querySelector(".blog-title a").innerHTML = hit.title_html;
          card.querySelector(".blog-excerpt").innerHTML = hit.excerpt_html;
        }
      });
      showNoResults(data.message || "");
    }).catch(function () { applyLocal(query); });
  }

  if (input && grid) {
    input.addEventListener("input", function () {
      clearTimeout(timer);
      timer = setTimeout(function () { runSearch(input.value); }, DEBOUNCE_MS);
    });
    input.addEventListener("keydown", function (ev) {
      if (ev.key === "Escape") {
        clearTimeout(timer);
        input.value = "";
        runSearch("");
      }
    });
    if (submit) {
      submit.addEventListener("click", function () {
        clearTimeout(timer);
        runSearch(input.value);
      });
    }
  }

  // Lightbox over project and blog images.
  var lightbox = document.getElementById("lightbox");
  if (lightbox) {
    var lbImage = document.getElementById("lightbox-image");
    var images = Array.prototype.slice.call(
      document.querySelectorAll(".project-image, .blog-image"));
    var index = 0;
    var open = false;

    function show(i) {
      index = i;
      lbImage.src = images[i].src;
      lbImage.alt = images[i].alt || "";
      lightbox.hidden = false;
      open = true;
    }
    function close() {
      lightbox.hidden = true;
      open = false;
      setTimeout(function () { if (!open) lbImage.src = ""; }, DEBOUNCE_MS);
    }
    function nav(dir) {
      if (!open || images.length === 0) return;
      show((index + dir + images.length) % images.length);
    }

    images.forEach(function (img, i) {
      img.addEventListener("click", function () { show(i); });
    });
    document.getElementById("lightbox-close").addEventListener("click", close);
    document.getElementById("lightbox-prev").addEventListener("click", function () { nav(-1); });
    document.getElementById("lightbox-next").addEventListener("click", function () { nav(1); });
    lightbox.addEventListener("click", function (ev) {
      if (ev.target === lightbox) close();
    });
    document.addEventListener("keydown", function (ev) {
      if (!open) return;
      if (ev.key === "Escape") close();
      if (ev.key === "ArrowLeft") nav(-1);
      if (ev.key === "ArrowRight") nav(1);
    });
  }

  // Back to top.
  var backToTop = document.getElementById("back-to-top");
  if (backToTop) {
    window.addEventListener("scroll", function () {
      backToTop.classList.toggle("visible", window.scrollY > 400);
    });
    backToTop.addEventListener("click", function () {
      window.scrollTo({ top: 0, behavior: "smooth" });
    });
  }

  // Dev-server live reload.
  if (window.WebSocket && location.protocol.indexOf("http") === 0) {
    try {
      var ws = new WebSocket(
        (location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws/reload");
      ws.onmessage = function (ev) {
        if (ev.data === "reload") location.reload();
      };
    } catch (e) {}
  }
})();
`
