package server

import "html/template"

var chatTemplate = template.Must(template.New("chat").Parse(`<!DOCTYPE html>
<html>
<head>
<title>ShaiMind</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; padding: 0 1em; }
.mood { color: #666; }
.scrollback { border: 1px solid #ccc; padding: 1em; margin: 1em 0; min-height: 12em; }
.msg { margin: 0.5em 0; white-space: pre-wrap; }
.msg.user { text-align: right; }
.msg.user .who { color: #246; }
.msg.assistant .who { color: #624; }
.footer { color: #888; font-size: 0.85em; border-top: 1px solid #ccc; margin-top: 2em; padding-top: 1em; }
input[type=text] { width: 75%; }
</style>
</head>
<body>
<h1>ShaiMind</h1>
<p>Talk to historical figures like Edgar Allan Poe and Nikola Tesla.</p>

<form method="POST" action="/persona">
<label>Choose a personality:
<select name="persona" onchange="this.form.submit()">
{{range .Personas}}<option value="{{.}}"{{if eq . $.ActiveKey}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<noscript><button type="submit">Switch</button></noscript>
</form>

<p><strong>Talking to:</strong> {{.PersonaName}}<br>
Traits: {{.Traits}}<br>
<span class="mood">Current mood: {{.Mood}} (Intensity: {{.Intensity}})</span></p>

<div class="scrollback">
{{range .Messages}}<div class="msg {{.Role}}"><span class="who">{{.Role}}:</span> {{.Content}}</div>
{{else}}<p><em>No messages yet. Say something below.</em></p>
{{end}}</div>

<form method="POST" action="/chat">
<input type="text" name="message" placeholder="Type your message here..." autofocus>
<button type="submit">Send</button>
</form>

<div class="footer">
<p>How to use: choose a personality from the dropdown, type your message
and press Send. The reply reflects the persona's identity, emotional
state and conversation history. The persona's internal thought process
is hidden, but its effects are visible in the response.</p>
</div>
</body>
</html>
`))
