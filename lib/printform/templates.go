package printprovider

import "html/template"

// Markup and CSS mirror the paper HRDSPAD Form No. 07 layout; two form blocks
// fit one 8.5x13.5in page, the second block of each pair carries the cut line.

type formBlock struct {
	PageBreak         bool
	Odd               bool
	Even              bool
	EmployeeName      string
	EmployeePosition  string
	OfficeDisplay     string
	DivisionDisplay   string
	DateDisplay       string
	LocationFrom      string
	LocationTo        string
	Departure         string
	Return            string
	Purpose           string
	ApprovedBy        string
	ApprovedByPosition string
}

type printDocument struct {
	Title  string
	Blocks []formBlock
}

type releaseRow struct {
	Number       int
	NameWithPost string
	Destination  string
	DateDisplay  string
}

type releaseDocument struct {
	Period string
	Rows   []releaseRow
}

var obFormTemplate = template.Must(template.New("ob-form").Parse(obFormHTML))

var releaseFormTemplate = template.Must(template.New("release-form").Parse(releaseFormHTML))

const obFormHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Official Business Form - {{.Title}}</title>
  <link rel="icon" href="https://batangmalaya.ph/wp-content/uploads/2022/12/1_dole.png" type="image/png">
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
      margin: 0;
      padding: 0;
      font-size: 12px;
      background-color: #ffffff;
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: -1px;
    }
    table, th, td {
      border: 1px solid #2C3E50;
    }
    th, td {
      padding: 5px;
      text-align: left;
    }
    .header-left {
      width: 25%;
      text-align: left;
      vertical-align: middle;
      font-weight: bold;
    }
    .header-center {
      width: 50%;
      text-align: center;
      vertical-align: middle;
      font-weight: bold;
    }
    .header-right {
      width: 10%;
      text-align: center;
      vertical-align: middle;
    }
    .logo {
      width: 40px;
      height: auto;
      margin-left: 10px;
      margin-right: 10px;
    }
    .header-right-content {
      display: flex;
      flex-direction: row;
      align-items: center;
      justify-content: center;
    }
    .header-text {
      text-align: center;
      white-space: nowrap;
      line-height: 1.2;
      font-size: 12px;
    }
    .center-text {
      text-align: center;
    }
    .approval-section {
      height: 80px;
    }
    .certificate-section {
      height: 100px;
    }
    .instructions {
      font-size: 10px;
    }
    .cutout-line {
      width: 100%;
      height: 0;
      border-top: 1px dashed #000;
      margin: 0;
      padding: 3px 0;
    }
    .form-page {
      width: 8.5in;
      padding: 5px 0.4cm;
      box-sizing: border-box;
      overflow: hidden;
      margin-left: auto;
      margin-right: auto;
    }
    .page-break {
      page-break-before: always;
    }
    .print-button {
      position: fixed;
      top: 25px;
      left: 25px;
      padding: 10px 20px;
      background-color: #2C3E50;
      color: #ffffff;
      border: none;
      border-radius: 4px;
      cursor: pointer;
      z-index: 1000;
      font-size: 14px;
      font-weight: 500;
    }
    .print-button:hover {
      background-color: #3498DB;
    }
    @media print {
      .print-button {
        display: none;
      }
      @page {
        size: 8.5in 13.5in;
        margin: 0;
      }
      body {
        display: flex;
        flex-direction: column;
        justify-content: flex-start;
        align-items: center;
        height: 100%;
        width: 100%;
        margin: 0;
        padding: 0;
      }
      .form-page {
        padding: 5px 0.3cm;
        width: 8.5in;
        max-height: calc((13.5in - 0.6cm) / 2);
        box-sizing: border-box;
        overflow: hidden;
        page-break-after: avoid;
        page-break-inside: avoid;
        margin-left: auto;
        margin-right: auto;
        display: flex;
        flex-direction: column;
      }
      .form-page table {
        font-size: 11px;
      }
      .form-page th, .form-page td {
        padding: 4px;
      }
      .approval-section {
        height: 60px;
        min-height: 60px;
      }
      .certificate-section {
        height: 80px;
        min-height: 80px;
      }
      .instructions {
        font-size: 9px;
        line-height: 1.2;
      }
      .form-page:nth-of-type(2n) {
        page-break-after: always;
      }
      .form-page:nth-of-type(2n+1) {
        page-break-after: avoid;
      }
      .form-page:last-child:nth-of-type(odd) {
        page-break-before: auto;
        page-break-after: avoid;
      }
      .form-page.page-break {
        page-break-before: always;
      }
      .cutout-line {
        border-top: 1px dashed #000;
        margin: 0.1in 0;
        page-break-inside: avoid;
      }
    }
  </style>
</head>
<body>
  <button class="print-button" onclick="window.print()">Print Form</button>
{{- range .Blocks}}
  <div class="form-page{{if .PageBreak}} page-break{{end}}">
    {{if .Odd}}<br>{{end}}
    {{if .Even}}<div class="cutout-line"></div>{{end}}
    <table>
      <tr>
        <td class="header-left">
          HRDSPAD<br>
          Form No. 07<br>
          <div style="font-size: 10px;">(Revised, January 2015)</div>
        </td>
        <td class="header-center">
          OFFICIAL BUSINESS FORM
        </td>
        <td class="header-right">
          <div class="header-right-content">
            <img src="https://batangmalaya.ph/wp-content/uploads/2022/12/1_dole.png" class="logo">
            <div class="header-text">
              Republic of the Philippines<br>
              DEPARTMENT OF LABOR AND EMPLOYMENT<br>
              Intramuros, Manila
            </div>
          </div>
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td style="width: 50%;">
          Name of Employee:<br>
          <strong>{{.EmployeeName}}</strong>
        </td>
        <td style="width: 50%;">
          Position:<br>
          <strong>{{.EmployeePosition}}</strong>
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td style="width: 33%;">
          Office:<br>
          <strong>{{.OfficeDisplay}}</strong>
        </td>
        <td style="width: 33%;">
          Division:<br>
          <strong>{{.DivisionDisplay}}</strong>
        </td>
        <td style="width: 34%;">
          Date of Official Business:<br>
          <strong>{{.DateDisplay}}</strong>
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td colspan="2" class="center-text">
          <strong>Itinerary/Destination</strong>
        </td>
        <td colspan="2" class="center-text">
          <strong>Time</strong>
        </td>
      </tr>
      <tr>
        <td style="width: 25%;" class="center-text">
          <strong>From</strong><br>
          {{.LocationFrom}}
        </td>
        <td style="width: 25%;" class="center-text">
          <strong>To</strong><br>
          {{.LocationTo}}
        </td>
        <td style="width: 25%;" class="center-text">
          <strong>Departure</strong><br>
          {{.Departure}}
        </td>
        <td style="width: 25%;" class="center-text">
          <strong>Expected Return</strong><br>
          {{.Return}}
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td>
          <strong>Purpose:</strong><br>
          {{.Purpose}}
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td style="width: 50%;" class="center-text approval-section">
          <div style="margin-top: 60px;"><strong>{{.EmployeeName}}</strong></div>
          <div>Employee's Signature</div>
        </td>
        <td style="width: 50%;" class="center-text approval-section">
          <div style="text-align: left;"><strong>Approved by:</strong></div><br><br><br>
          <strong>{{.ApprovedBy}}</strong><br>
          {{.ApprovedByPosition}}
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td class="center-text" colspan="2" style="background-color: #F4F6F7; border-bottom: 2px solid #1ABC9C;">
          <strong>TO BE FILLED BY THE AGENCY OR COMPANY WHERE BUSINESS IS TRANSACTED</strong>
        </td>
      </tr>
      <tr>
        <td colspan="2" class="certificate-section">
          <div style="text-align: center;"><strong>CERTIFICATE OF APPEARANCE</strong></div>
          <p style="margin-left: 40px; margin-right: 40px; text-indent: 70px;">
            This is to certify that the person whose name is shown above personally appeared in this office as indicated and for the purpose stated.
          </p>
          <br><br>
          <div style="text-align: center;">
            <div style="width: 80%; margin: 0 auto; border-top: 1px solid black;"></div>
            <div>Signature over Printed Name of Officer or Authorized Signatory and Designation</div>
          </div>
        </td>
      </tr>
    </table>
    <table>
      <tr>
        <td class="instructions">
          <strong>INSTRUCTIONS:</strong><br>
          <ol>
            <li>Employees are required to accomplish an official business (OB) form prior to their participation and/or attendance to official functions such as meetings, field assignment. Approved/signed OB slips must be attached to the DTRs/bundy cards upon submission to the Human Resource Development Service (HRDS) or the Personnel Unit of the Internal Management Services Division (IMSD) of each regional office.<br>
            Employees who attended trainings or seminars are required to submit a copy of their certificate of attendance/appearance to such in lieu of the OB form.</li>
            <li>An OB is applicable only for <strong>one (1) day</strong> regardless of the duration and/or start/end time of the business, except warranted.</li>
            <li>Failure to submit the duly approved OB forms or certificate of attendance/appearance shall be a ground for deduction from the vacation leave credits. Such deduction shall be counted as tardiness, undertime or whole day absence, whichever is applicable.</li>
            <li>Employees must ensure that the Certificate of Appearance in this form is duly signed by the agency or company where business is transacted.</li>
          </ol>
        </td>
      </tr>
    </table>
  </div>
{{- end}}
</body>
</html>
`

const releaseFormHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Released Form</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
      margin: 0;
      padding: 0;
      font-size: 12px;
      background-color: #ffffff;
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: -1px;
    }
    table, th, td {
      border: 1px solid #2C3E50;
    }
    th, td {
      padding: 5px;
      text-align: left;
    }
    .header {
      text-align: center;
      font-weight: bold;
      font-size: 14px;
      padding: 10px;
    }
    .center-text {
      font-weight: 600;
      background-color: #F4F6F7;
      text-align: center;
      border-bottom: 2px solid #3498DB;
    }
    .form-page {
      width: 8.5in;
      padding: 0.4cm;
      box-sizing: border-box;
      overflow: hidden;
      margin: 0 auto;
    }
    .period-row td {
      font-weight: bold;
    }
    .print-button {
      position: fixed;
      top: 25px;
      right: 25px;
      padding: 10px 18px;
      background-color: #2C3E50;
      color: #ffffff;
      border: none;
      border-radius: 0;
      cursor: pointer;
      z-index: 1000;
      font-size: 14px;
      font-weight: 500;
    }
    .print-button:hover {
      background-color: #3498DB;
    }
    .data-row td {
      padding-top: 0.3cm;
      padding-bottom: 0.3cm;
    }
    @media print {
      .print-button {
        display: none;
      }
      @page {
        size: 8in 13in;
        margin: 0;
      }
      body {
        display: flex;
        justify-content: center;
        align-items: center;
        height: 100%;
        width: 100%;
        margin: 0;
        padding: 0;
      }
      .form-page {
        padding: 0.3cm;
        height: auto;
        page-break-after: avoid;
        margin: 0 auto;
        margin-top: 0.25cm;
      }
    }
  </style>
</head>
<body>
  <button class="print-button" onclick="window.print()">Print Form</button>
  <div class="form-page">
    <table>
      <tr>
        <td colspan="6" class="header">
          RECORDS APPROVED OFFICIAL BUSINESS<br>
          RELEASED FORM
        </td>
      </tr>
      <tr class="period-row">
        <td colspan="6">Months/Period: {{.Period}}</td>
      </tr>
      <tr>
        <td style="width: 5%;" class="center-text">No.</td>
        <td style="width: 20%;" class="center-text">Name (Position)</td>
        <td style="width: 25%;" class="center-text">Destination</td>
        <td style="width: 8%;" class="center-text">Date of Official Business</td>
        <td style="width: 15%;" class="center-text">Signature</td>
        <td style="width: 8%;" class="center-text">Date Received</td>
      </tr>
{{- range .Rows}}
      <tr class="data-row">
        <td>{{.Number}}</td>
        <td>{{.NameWithPost}}</td>
        <td>{{.Destination}}</td>
        <td>{{.DateDisplay}}</td>
        <td>{{.Number}}</td>
        <td></td>
      </tr>
{{- end}}
    </table>
  </div>
</body>
</html>
`
