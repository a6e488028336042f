package render

// documentHTML is the fixed report layout. The three chart canvases are
// drawn by Chart.js inside the headless browser; window.__chartsReady is the
// signal the PDF exporter waits on before printing.
const documentHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Healieve • Health &amp; Fitness Report</title>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap" rel="stylesheet">
<style>
  @page { size:A4; margin:24mm 16mm 22mm 16mm; }
  html,body{ margin:0; padding:0; background:#fff; color:#0f172a; font-family:'Inter',system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif; }
  .wrap{ max-width:800px; margin:0 auto; }
  .brandbar{ display:flex; align-items:center; gap:14px; border-radius:12px; background:linear-gradient(135deg,#1e40af,#0ea5e9); color:#fff; padding:12px 14px; margin:0 0 12px; }
  .brandbar img{ height:28px; width:auto; border-radius:6px; }
  .title{ font-weight:800; letter-spacing:.3px; }
  .hero img{ width:100%; height:160px; object-fit:cover; border-radius:12px; }
  .card{ background:#fff; border:1px solid #e6eef8; border-radius:12px; padding:14px; margin:12px 0; box-shadow:0 2px 8px rgba(10,10,10,0.04); }
  h2.section{ font-size:14px; font-weight:800; margin:0 0 8px; }
  .grid{ display:grid; gap:10px; }
  .cols-3{ grid-template-columns:repeat(3,minmax(0,1fr)); }
  .item label{ font-size:11px; color:#64748b; display:block; }
  .item div{ font-size:13px; font-weight:600; }
  .charts{ display:grid; grid-template-columns:repeat(2,minmax(0,1fr)); gap:12px; }
  .chart-card{ border:1px solid #e6eef8; border-radius:10px; padding:10px; }
  .chart-box{ width:100%; height:220px; } /* fixed height so print capture is stable */
  .plan{ font-size:12px; line-height:1.6; }
  .exercise-card{ display:flex; gap:12px; margin-bottom:14px; }
  .exercise-left{ width:260px; flex-shrink:0; }
  .exercise-left img{ width:100%; height:170px; object-fit:cover; border-radius:10px; }
  .step-thumb{ width:120px; font-size:11px; }
  .step-thumb img{ width:100%; height:78px; object-fit:cover; border-radius:8px; }
  .wm{ position:fixed; inset:0; pointer-events:none; z-index:0; display:grid; place-items:center; opacity:0.06; font-weight:900; font-size:72px; color:#1e40af; transform:rotate(-30deg);}
  .footer-note{ text-align:center; color:#64748b; font-size:11px; margin-top:6px; }
</style>
</head>
<body>
  <div class="wm">HEALIEVE</div>
  <div class="wrap">
    <div class="brandbar">
      {{if .Logo}}<img src="{{safeurl .Logo}}" alt="Healieve" />{{end}}
      <div class="title">Healieve • Health &amp; Fitness Report</div>
      <div style="margin-left:auto; font-size:11px;">{{.GeneratedAt.Format "02 Jan 2006"}}</div>
    </div>

    {{if .Hero}}<div class="hero"><img src="{{safeurl .Hero}}" alt="Hero"/></div>{{end}}

    <div class="card">
      <h2 class="section">Key Health Metrics</h2>
      <div class="grid cols-3">
        <div class="item"><label>BMI</label><div>{{dash .Metrics.BMI}}</div></div>
        <div class="item"><label>BMR (kcal/day)</label><div>{{dash .Metrics.BMR}}</div></div>
        <div class="item"><label>TDEE (kcal/day)</label><div>{{dash .Metrics.TDEE}}</div></div>
      </div>
      <div class="grid cols-3" style="margin-top:8px;">
        <div class="item"><label>Target Calories</label><div>{{dash .Metrics.CalorieTarget}}</div></div>
        <div class="item"><label>Macro Split (P/C/F)</label><div>{{dash .Metrics.Macros}}</div></div>
        <div class="item"><label>Activity Level</label><div>{{dash .Profile.ActivityLevel}}</div></div>
      </div>
    </div>

    <div class="card">
      <h2 class="section">Profile</h2>
      <div class="grid cols-3">
        <div class="item"><label>Name</label><div>{{dash .Profile.Name}}</div></div>
        <div class="item"><label>Age</label><div>{{dash .Profile.Age}}</div></div>
        <div class="item"><label>Gender</label><div>{{dash .Profile.Gender}}</div></div>
        <div class="item"><label>Height (cm)</label><div>{{dash .Profile.HeightCm}}</div></div>
        <div class="item"><label>Weight (kg)</label><div>{{dash .Profile.WeightKg}}</div></div>
        <div class="item"><label>Body Type</label><div>{{dash .Profile.BodyType}}</div></div>
        <div class="item"><label>Diet</label><div>{{dash .Profile.DietType}}</div></div>
        <div class="item"><label>Medical</label><div>{{dash .Profile.Medical}}</div></div>
        <div class="item"><label>Habits</label><div>{{dash .Profile.Habits}}</div></div>
        <div class="item"><label>Goal</label><div>{{dash .Profile.Goal}}</div></div>
      </div>
      {{if .Measurements}}
      <div class="grid cols-3" style="margin-top:8px;">
        {{range .Measurements}}
        <div class="item"><label>{{.Part}} (cm)</label><div>{{dash .Cm}}</div></div>
        {{end}}
      </div>
      {{end}}
    </div>

    <div class="card">
      <h2 class="section">Analytics</h2>
      <div class="charts">
        <div class="chart-card">
          <div style="font-size:12px;margin-bottom:6px;">Macros Breakdown</div>
          <canvas id="pieChart" class="chart-box"></canvas>
        </div>
        <div class="chart-card">
          <div style="font-size:12px;margin-bottom:6px;">Weekly Calories Burned</div>
          <canvas id="barChart" class="chart-box"></canvas>
        </div>
      </div>
      <div style="margin-top:10px;">
        <div class="chart-card">
          <div style="font-size:12px;margin-bottom:6px;">Projected Weight Trend</div>
          <canvas id="lineChart" class="chart-box"></canvas>
        </div>
      </div>
    </div>

    <div class="card">
      <h2 class="section">7-Day Fitness &amp; Nutrition Plan</h2>
      <div class="plan">{{raw .PlanHTML}}</div>
    </div>

    <div class="card">
      <h2 class="section">Exercise Library &amp; Technique</h2>
      {{range .Exercises}}
        <div class="exercise-card">
          <div class="exercise-left">
            {{if .MainImageData}}<img src="{{safeurl .MainImageData}}" alt="{{.Name}}" />{{else}}<div style="height:170px;background:#f1f5f9;border-radius:10px;display:grid;place-items:center;color:#94a3b8">No Image</div>{{end}}
            <div style="display:flex; gap:8px; align-items:center; margin-top:8px;">
              {{if .DemoQR}}<img src="{{safeurl .DemoQR}}" style="width:58px;height:58px;border-radius:8px;" alt="qr" />{{end}}
              <div>
                <div style="font-weight:700">{{.Name}}</div>
                <div style="font-size:11px;color:#64748b">{{.Equipment}} • {{.Difficulty}}</div>
              </div>
            </div>
          </div>
          <div style="flex:1;">
            <div style="display:flex; gap:12px; align-items:flex-start;">
              <div style="flex:1;">
                <div style="font-weight:700; margin-bottom:6px">Technique &amp; Details</div>
                <div style="font-size:12px;color:#0f172a; margin-bottom:6px">
                  Reps: <strong>{{dash .Reps}}</strong> • Tempo: <strong>{{dash .Tempo}}</strong> • Rest: <strong>{{dash .Rest}}</strong>
                </div>
                <div style="font-size:12px; color:#334155;">{{.Description}}</div>
              </div>
              <div style="width:160px;">
                <div style="font-size:11px;color:#64748b;margin-bottom:6px">Muscles</div>
                <div style="font-weight:700">{{join .Muscles ", "}}</div>
              </div>
            </div>
            <div style="display:flex; gap:8px; margin-top:10px; flex-wrap:wrap;">
              {{range .ResolvedSteps}}
                <div class="step-thumb">
                  {{if .Image}}<img src="{{safeurl .Image}}" alt="step" />{{else}}<div style="height:78px;background:#f8fafc;border-radius:8px"></div>{{end}}
                  <div style="margin-top:6px; color:#475569;">{{.Caption}}</div>
                </div>
              {{end}}
            </div>
          </div>
        </div>
      {{end}}
    </div>

    <div class="card">
      <div style="text-align:center; color:#64748b; font-size:11px;">© {{.GeneratedAt.Year}} Healieve • Confidential</div>
    </div>
  </div>

  <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
  <script>
    (function(){
      const MACROS = {{jsonjs .Macros}};
      const WEEKLY = {{jsonjs .Weekly}};
      const TREND  = {{jsonjs .WeightTrend}};

      function ready(fn){ document.readyState !== 'loading' ? fn() : document.addEventListener('DOMContentLoaded', fn); }
      ready(function(){
        new Chart(document.getElementById('pieChart').getContext('2d'), {
          type:'pie', data:{ labels: MACROS.labels, datasets:[{ data: MACROS.values }] },
          options:{ animation:false, plugins:{ legend:{ position:'bottom' } } }
        });
        new Chart(document.getElementById('barChart').getContext('2d'), {
          type:'bar', data:{ labels: WEEKLY.labels, datasets:[{ label:'kcal', data: WEEKLY.values }] },
          options:{ animation:false, plugins:{ legend:{ display:false } }, scales:{ y:{ beginAtZero:true } } }
        });
        new Chart(document.getElementById('lineChart').getContext('2d'), {
          type:'line', data:{ labels: TREND.labels, datasets:[{ label:'kg', data: TREND.values, tension:0.3, fill:false }] },
          options:{ animation:false, plugins:{ legend:{ display:false } } }
        });
        window.__chartsReady = true;
      });
    })();
  </script>
</body>
</html>`
