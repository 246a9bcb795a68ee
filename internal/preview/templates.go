package preview

// fragmentTemplate renders the preview body. Interactive elements carry
// data-action attributes that the editor page wires to the HTTP API.
const fragmentTemplate = `{{define "heading"}}<h3 class="{{.Styles.SectionHeading}}">{{if .Styles.HeadingAccent}}<span class="pf-accent-bar"></span>{{end}}{{.Text}}</h3>{{end}}
{{define "preview"}}<div class="{{.Styles.RootClass}}" style="{{.Styles.CSSVars}}" data-theme="{{.Styles.Theme}}" data-mode="{{.Styles.Mode}}">
<div class="{{.Styles.Container}}">
<header class="{{.Styles.Header}}">
  <div>
    <h2 class="{{.Styles.Title}}">{{.Profile.Title}}</h2>
    <h1 class="{{.Styles.Name}}">{{.Profile.Name}}</h1>
    {{if .Profile.BrandKeywords}}<div class="pf-keywords">{{range .Profile.BrandKeywords}}<span class="pf-keyword">{{.}}</span>{{end}}</div>{{end}}
    <div class="{{.Styles.Bio}}">{{.Profile.Bio}}</div>
    <div class="pf-social">
      <a class="pf-social-link" href="mailto:{{.Profile.Email}}">Email</a>
      <a class="pf-social-link" href="{{.Profile.GitHub}}" target="_blank" rel="noopener">GitHub</a>
      <a class="pf-social-link" href="{{.Profile.LinkedIn}}" target="_blank" rel="noopener">LinkedIn</a>
      {{if .Profile.Twitter}}<a class="pf-social-link" href="{{.Profile.Twitter}}" target="_blank" rel="noopener">Twitter</a>{{end}}
    </div>
  </div>
  <div class="pf-portrait">
    {{if .Profile.Picture}}<img src="{{.Profile.Picture}}" alt="{{.Profile.Name}}">{{else}}<div class="pf-portrait-empty" aria-label="No profile picture"></div>{{end}}
  </div>
</header>

<section class="pf-section" id="skills">
  {{template "heading" (heading . "Proven Expertise")}}
  <div class="pf-skills">
    {{range .Skills}}<div class="pf-skill{{if .Proven}} pf-skill-proven{{end}}"{{if .Proven}} title="Proven in project works"{{end}}>{{.Name}}{{if .Proven}}<span class="pf-trophy" aria-hidden="true">&#9733;</span>{{end}}</div>
    {{end}}
  </div>
</section>

<section class="pf-section" id="experience">
  {{template "heading" (heading . "Career Journey")}}
  <div class="pf-experiences">
    {{$timeline := .Styles.ExperienceTimeline}}{{$s := .Styles}}
    {{range .Experiences}}<div class="pf-experience{{if $timeline}} pf-experience-timeline{{end}}" data-experience="{{.ID}}">
      {{if $timeline}}<div class="pf-period pf-mono">{{.Period}}</div>{{end}}
      <div class="pf-experience-body">
        <h4 class="{{$s.CardTitle}}">{{.Role}}</h4>
        <div class="pf-company-row"><span class="pf-company">{{.Company}}</span>{{if not $timeline}}<span class="pf-period pf-mono">{{.Period}}</span>{{end}}</div>
        <div class="pf-text">{{.Description}}</div>
      </div>
    </div>
    {{end}}
  </div>
</section>

<section class="pf-section" id="projects">
  {{template "heading" (heading . "Selected Works")}}
  <div class="pf-grid pf-grid-{{.Styles.ProjectColumns}}">
    {{$ps := .Styles}}
    {{range .Projects}}<div class="{{$ps.Card}}" data-project="{{.ID}}">
      <div class="pf-project-image">
        {{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
        {{if .Story}}<button type="button" class="pf-story-toggle" data-action="toggle-story" data-project="{{.ID}}" aria-expanded="{{.Expanded}}">View Story</button>{{end}}
      </div>
      {{if and .Expanded .Story}}<div class="{{$ps.Story.Container}}" data-story="{{.ID}}">
        <div class="pf-story-top"><h5 class="{{$ps.Story.Header}}">The Story</h5><button type="button" class="pf-story-close" data-action="toggle-story" data-project="{{.ID}}" aria-label="Close story">&times;</button></div>
        <div class="{{$ps.Story.Content}}"><span class="{{$ps.Story.Label}}">Problem</span>{{.Story.Problem}}</div>
        <div class="{{$ps.Story.Content}}"><span class="{{$ps.Story.Label}}">Approach</span>{{.Story.Approach}}</div>
        <div class="{{$ps.Story.Content}}"><span class="{{$ps.Story.Label}}">Solution</span>{{.Story.Solution}}</div>
        <div class="{{$ps.Story.Content}}"><span class="{{$ps.Story.Label}}">Outcome</span>{{.Story.Outcome}}</div>
      </div>{{end}}
      <h4 class="{{$ps.CardTitle}}">{{.Title}}</h4>
      <div class="pf-text">{{.Description}}</div>
      {{if .Technologies}}<div class="pf-techs">{{range .Technologies}}<span class="pf-tech">{{.}}</span>{{end}}</div>{{end}}
      {{if .SkillsTagged}}<div class="pf-tags">{{range .SkillsTagged}}<span class="pf-tag">&#10003; {{.}}</span>{{end}}</div>{{end}}
      {{if .Stats}}<div class="pf-stats"><span>&#9733; {{.Stats.Stars}}</span><span>&#8917; {{.Stats.Forks}}</span></div>{{end}}
      <div class="pf-links">
        <a class="pf-link" href="{{.Link}}">View Live &#8599;</a>
        {{if .GitHubRepo}}<a class="pf-link pf-link-muted" href="{{.GitHubRepo}}" target="_blank" rel="noopener">Code</a>{{end}}
      </div>
    </div>
    {{end}}
  </div>
</section>

<section class="pf-section" id="contact">
  {{template "heading" (heading . "Get In Touch")}}
  <div class="pf-contact{{if .Styles.ContactSplit}} pf-contact-split{{end}}">
    <div>
      <p class="pf-text">Have a project in mind or just want to say hi? My inbox is always open!</p>
      <a class="pf-link" href="mailto:{{.Profile.Email}}">{{.Profile.Email}}</a>
    </div>
    <div class="pf-contact-panel" data-status="{{.Contact.Status}}">
      {{if eq .Contact.Status "success"}}<div class="pf-contact-success">
        <h4>Message Sent!</h4>
        <p>Thanks for reaching out. I'll get back to you soon.</p>
        <button type="button" class="pf-link" data-action="contact-reset">Send another message</button>
      </div>{{else}}<form class="pf-contact-form" data-action="contact-submit">
        <label class="pf-label">Name<input class="{{.Styles.Input}}" type="text" name="name" required placeholder="Your Name" value="{{.Contact.Fields.Name}}"></label>
        <label class="pf-label">Email<input class="{{.Styles.Input}}" type="email" name="email" required placeholder="hello@example.com" value="{{.Contact.Fields.Email}}"></label>
        <label class="pf-label">Message<textarea class="{{.Styles.Input}}" name="message" rows="4" required placeholder="What's on your mind?">{{.Contact.Fields.Message}}</textarea></label>
        {{if .Contact.Error}}<p class="pf-error">{{.Contact.Error}}</p>{{end}}
        <button type="submit" class="{{.Styles.Submit}}"{{if eq .Contact.Status "sending"}} disabled{{end}}>{{if eq .Contact.Status "sending"}}Sending&hellip;{{else}}Send Message{{end}}</button>
      </form>{{end}}
    </div>
  </div>
</section>

<footer class="{{.Styles.Footer}}">
  <div>&copy; {{.Year}} {{.Profile.Name}}. Created with PortfoliAI.</div>
  <div class="pf-footer-links"><a href="#">Privacy</a><a href="#">Terms</a><a href="#contact">Contact</a></div>
</footer>
</div>
</div>{{end}}`

// pageTemplate wraps the preview in a standalone document for export.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.View.Profile.Name}} - Portfolio</title>
  <style>{{.CSS}}</style>
</head>
<body class="pf-page">
{{template "preview" .View}}
{{if .Print}}<script>window.addEventListener("load", function () { window.print(); });</script>{{end}}
</body>
</html>`

// cssContent styles every theme. Colors come from the palette variables set
// on the root element.
const cssContent = `
.pf { background: var(--pf-bg); color: var(--pf-text); font-family: ui-sans-serif, system-ui, -apple-system, "Segoe UI", sans-serif; min-height: 100%; }
.pf *, .pf *::before, .pf *::after { box-sizing: border-box; }
.pf a { color: inherit; }
.pf-container { margin: 0 auto; padding: 4rem 2rem; }
.pf-container-wide { max-width: 64rem; }
.pf-container-narrow { max-width: 48rem; padding: 5rem 1.5rem; }
.pf-serif { font-family: ui-serif, Georgia, Cambria, "Times New Roman", serif; }
.pf-mono { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
.pf-upper { text-transform: uppercase; }
.pf-tracked { letter-spacing: 0.2em; }
.pf-italic { font-style: italic; }

.pf-header { margin-bottom: 5rem; }
.pf-header-split { display: grid; grid-template-columns: 1.5fr 1fr; gap: 3rem; align-items: center; }
.pf-header-centered { text-align: center; }
.pf-header-centered .pf-portrait { max-width: 16rem; margin: 2rem auto 0; }
.pf-name { margin: 0 0 1rem; letter-spacing: -0.02em; }
.pf-name-bold { font-size: 3.75rem; font-weight: 800; }
.pf-name-light { font-size: 2.25rem; font-weight: 300; }
.pf-name-display { font-size: 4.5rem; font-weight: 700; font-style: italic; color: var(--pf-accent); }
.pf-title { font-size: 1.125rem; color: var(--pf-muted); margin: 0 0 1rem; font-weight: 600; }
.pf-title-accent { color: var(--pf-accent); font-size: 1.25rem; }
.pf-bio { font-size: 1.125rem; line-height: 1.7; color: var(--pf-muted); }
.pf-bio-large { font-size: 1.5rem; max-width: 42rem; margin: 3rem auto 0; }
.pf-keywords { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-top: 1rem; }
.pf-header-centered .pf-keywords, .pf-header-centered .pf-social { justify-content: center; }
.pf-keyword { font-size: 0.625rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.05em; padding: 0.125rem 0.5rem; border-radius: 999px; border: 1px solid var(--pf-border); background: var(--pf-accent-soft); color: var(--pf-accent); }
.pf-social { display: flex; gap: 1rem; margin-top: 2rem; }
.pf-social-link { padding: 0.5rem 0.75rem; border-radius: 999px; background: var(--pf-surface); color: var(--pf-muted); text-decoration: none; font-size: 0.875rem; }
.pf-portrait { position: relative; }
.pf-portrait img, .pf-portrait-empty { width: 100%; aspect-ratio: 1; object-fit: cover; border-radius: 1.5rem; border: 2px solid var(--pf-border); background: var(--pf-surface); display: block; }
.pf-dark .pf-portrait img { opacity: 0.7; }

.pf-section { margin-bottom: 6rem; }
.pf-heading { margin: 0 0 2.5rem; color: var(--pf-text); }
.pf-heading-accent { display: flex; align-items: center; gap: 1rem; font-size: 1.5rem; font-weight: 700; }
.pf-accent-bar { display: inline-block; width: 3rem; height: 0.25rem; background: var(--pf-accent); }
.pf-heading-rule { font-size: 0.875rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.1em; color: var(--pf-muted); border-bottom: 1px solid var(--pf-border); padding-bottom: 0.5rem; }
.pf-heading-marker { display: inline-block; font-size: 2.25rem; font-weight: 700; background: linear-gradient(transparent 65%, var(--pf-accent-soft) 65%); }

.pf-skills { display: flex; flex-wrap: wrap; gap: 1rem; }
.pf-skill { position: relative; padding: 0.5rem 1rem; border-radius: 0.5rem; font-size: 0.875rem; font-weight: 500; border: 1px solid var(--pf-border); background: var(--pf-surface); color: var(--pf-muted); opacity: 0.6; }
.pf-skill-proven { opacity: 1; background: var(--pf-accent-soft); color: var(--pf-accent); border-color: var(--pf-accent); }
.pf-trophy { position: absolute; top: -0.4rem; right: -0.4rem; color: #eab308; font-size: 0.75rem; }

.pf-experiences { display: flex; flex-direction: column; gap: 3rem; }
.pf-experience-timeline { display: flex; gap: 2rem; }
.pf-experience-timeline .pf-period { width: 8rem; padding-top: 0.5rem; flex-shrink: 0; }
.pf-experience-body { flex: 1; }
.pf-company-row { display: flex; justify-content: space-between; align-items: center; margin-bottom: 0.75rem; }
.pf-company { color: var(--pf-accent); font-weight: 500; }
.pf-period { font-size: 0.75rem; color: var(--pf-muted); }
.pf-text { color: var(--pf-muted); font-size: 0.875rem; line-height: 1.7; }
.pf-text p, .pf-bio p, .pf-story-content p { margin: 0; }

.pf-grid { display: grid; gap: 2rem; }
.pf-grid-1 { grid-template-columns: 1fr; }
.pf-grid-2 { grid-template-columns: repeat(2, minmax(0, 1fr)); }
.pf-card { padding: 1.5rem; overflow: hidden; }
.pf-card-soft { background: var(--pf-surface); border-radius: 1rem; border: 1px solid transparent; }
.pf-card-plain { padding: 0 0 3rem; }
.pf-card-offset { background: var(--pf-surface); border: 2px solid var(--pf-border); box-shadow: 8px 8px 0 0 var(--pf-border); padding: 2rem; }
.pf-card-title { font-size: 1.25rem; font-weight: 700; margin: 0 0 0.5rem; color: var(--pf-text); }
.pf-card-title-large { font-size: 1.5rem; }
.pf-project-image { position: relative; margin-bottom: 1.5rem; border-radius: 0.75rem; overflow: hidden; border: 1px solid var(--pf-border); aspect-ratio: 4 / 3; }
.pf-project-image img { width: 100%; height: 100%; object-fit: cover; display: block; }
.pf-story-toggle { position: absolute; right: 1rem; bottom: 1rem; border: 0; border-radius: 999px; padding: 0.5rem 0.75rem; font-size: 0.75rem; font-weight: 700; cursor: pointer; background: var(--pf-bg); color: var(--pf-accent); }
.pf-story { margin-bottom: 1.5rem; padding: 1.5rem; display: grid; gap: 1.25rem; }
.pf-story-rounded { border-radius: 1rem; background: var(--pf-accent-soft); border: 1px solid var(--pf-border); }
.pf-story-rule { border-left: 2px solid var(--pf-accent); background: var(--pf-surface); }
.pf-story-offset { border: 2px solid var(--pf-border); box-shadow: 4px 4px 0 0 var(--pf-border); background: var(--pf-surface); }
.pf-story-top { display: flex; justify-content: space-between; align-items: flex-start; }
.pf-story-header { margin: 0; font-weight: 700; color: var(--pf-accent); }
.pf-story-close { background: none; border: 0; color: inherit; font-size: 1.25rem; cursor: pointer; opacity: 0.7; }
.pf-story-label { display: block; font-size: 0.6rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.1em; color: var(--pf-muted); margin-bottom: 0.25rem; }
.pf-story-content { font-size: 0.875rem; line-height: 1.6; }
.pf-techs, .pf-tags { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 1rem 0; }
.pf-tech { font-size: 0.625rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.05em; border: 1px solid var(--pf-border); color: var(--pf-muted); padding: 0.125rem 0.375rem; border-radius: 0.25rem; }
.pf-tag { font-size: 0.6rem; font-weight: 700; color: var(--pf-accent); background: var(--pf-accent-soft); padding: 0.125rem 0.5rem; border-radius: 999px; }
.pf-stats { display: flex; gap: 1rem; font-size: 0.75rem; color: var(--pf-muted); margin-bottom: 1rem; }
.pf-links { display: flex; gap: 1rem; }
.pf-link { font-size: 0.875rem; font-weight: 700; color: var(--pf-accent); text-decoration: none; background: none; border: 0; padding: 0; cursor: pointer; }
.pf-link-muted { color: var(--pf-muted); }

.pf-contact { display: grid; gap: 2rem; max-width: 42rem; }
.pf-contact-split { grid-template-columns: 1fr 1fr; gap: 4rem; max-width: none; }
.pf-contact-split .pf-contact-panel { background: var(--pf-surface); border: 1px solid var(--pf-border); border-radius: 1.5rem; padding: 2rem; }
.pf-contact-form { display: grid; gap: 1.5rem; }
.pf-label { display: block; font-size: 0.75rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.05em; color: var(--pf-muted); }
.pf-input { display: block; width: 100%; margin-top: 0.25rem; font: inherit; font-size: 1rem; text-transform: none; letter-spacing: normal; color: var(--pf-text); background: var(--pf-bg); outline: none; }
.pf-input-boxed { padding: 0.75rem; border: 1px solid var(--pf-border); border-radius: 0.75rem; }
.pf-input-underline { padding: 0.5rem 0; border: 0; border-bottom: 1px solid var(--pf-border); background: transparent; }
.pf-input-thick { padding: 0.75rem; border: 2px solid var(--pf-border); }
.pf-submit { width: 100%; padding: 1rem 1.5rem; font-weight: 700; cursor: pointer; border: 0; color: #ffffff; background: var(--pf-accent); }
.pf-submit:disabled { opacity: 0.5; cursor: progress; }
.pf-submit-rounded { border-radius: 0.75rem; }
.pf-submit-solid { background: var(--pf-text); color: var(--pf-bg); }
.pf-submit-offset { border: 2px solid var(--pf-border); box-shadow: 4px 4px 0 0 var(--pf-border); }
.pf-contact-success { text-align: center; padding: 3rem 0; }
.pf-error { color: #dc2626; font-size: 0.875rem; margin: 0; }

.pf-footer { margin-top: 6rem; padding-top: 3rem; border-top: 1px solid var(--pf-border); color: var(--pf-muted); font-size: 0.875rem; }
.pf-footer-centered { display: flex; flex-direction: column; align-items: center; gap: 2rem; }
.pf-footer-spread { display: flex; justify-content: space-between; }
.pf-footer-links { display: flex; gap: 1.5rem; font-size: 0.75rem; }
.pf-footer-links a { text-decoration: none; }

body.pf-page { margin: 0; }
@media (max-width: 768px) {
  .pf-header-split, .pf-contact-split, .pf-grid-2 { grid-template-columns: 1fr; }
  .pf-name-bold, .pf-name-display { font-size: 2.5rem; }
}
@media print {
  .pf-story-toggle, .pf-story-close, .pf-contact-form, .pf-contact-success button { display: none !important; }
  .pf-section { break-inside: avoid-page; }
  .pf { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
}
`
